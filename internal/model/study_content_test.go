package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"skriptio_backend/internal/model"
)

func TestQuizQuestionListValueScan(t *testing.T) {
	list := model.QuizQuestionList{
		{
			ID:          "q-1",
			Question:    "Plants use _____ to make food.",
			Options:     []string{"photosynthesis", "osmosis", "mitosis", "diffusion"},
			AnswerIndex: 0,
			Type:        model.QuestionMCQ,
		},
		{
			ID:          "q-2",
			Question:    "True/False: Water is wet.",
			Options:     []string{"True", "False"},
			AnswerIndex: 0,
			Type:        model.QuestionTrueFalse,
		},
	}

	raw, err := list.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}

	var decoded model.QuizQuestionList
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(decoded) != len(list) {
		t.Fatalf("Scan() got %d questions, want %d", len(decoded), len(list))
	}
	if decoded[0].Question != list[0].Question || decoded[0].AnswerIndex != 0 {
		t.Errorf("Scan() first question = %+v, want %+v", decoded[0], list[0])
	}
	if decoded[1].Type != model.QuestionTrueFalse {
		t.Errorf("Scan() second question type = %q, want %q", decoded[1].Type, model.QuestionTrueFalse)
	}
}

func TestFlashcardListScanNull(t *testing.T) {
	var cards model.FlashcardList
	if err := cards.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if cards != nil {
		t.Errorf("Scan(nil) = %v, want nil", cards)
	}
}

func TestStudyPlanDayListValueScan(t *testing.T) {
	plan := model.StudyPlanDayList{
		{Day: 1, Title: "Day 1: photosynthesis", Objectives: []string{"a", "b", "c"}},
	}
	raw, err := plan.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	var decoded model.StudyPlanDayList
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if decoded[0].Title != plan[0].Title || len(decoded[0].Objectives) != 3 {
		t.Errorf("Scan() = %+v, want %+v", decoded[0], plan[0])
	}
}

func TestQuizQuestionJSONFieldNames(t *testing.T) {
	q := model.QuizQuestion{
		ID:          "q-1",
		Question:    "x",
		Options:     []string{"a", "b"},
		AnswerIndex: 1,
		Type:        model.QuestionMCQ,
	}
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	body := string(data)
	for _, field := range []string{`"answer_index":1`, `"qtype":"mcq"`} {
		if !strings.Contains(body, field) {
			t.Errorf("Marshal() = %s, missing %s", body, field)
		}
	}
}
