package generator_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"skriptio_backend/internal/generator"
)

func TestGenerate_FullKit(t *testing.T) {
	kit, err := generator.Generate(sampleText, "Photosynthesis Notes")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if kit.ID == "" {
		t.Error("kit.ID is empty")
	}
	if kit.Title != "Photosynthesis Notes" {
		t.Errorf("kit.Title = %q", kit.Title)
	}
	if kit.CreatedAt.IsZero() {
		t.Error("kit.CreatedAt is zero")
	}
	if len(kit.Quiz) != generator.QuizSize {
		t.Errorf("len(Quiz) = %d, want %d", len(kit.Quiz), generator.QuizSize)
	}
	if len(kit.Flashcards) != generator.FlashcardCount {
		t.Errorf("len(Flashcards) = %d, want %d", len(kit.Flashcards), generator.FlashcardCount)
	}
	if len(kit.Plan) != generator.PlanDays {
		t.Errorf("len(Plan) = %d, want %d", len(kit.Plan), generator.PlanDays)
	}
}

func TestGenerate_DefaultTitle(t *testing.T) {
	kit, err := generator.Generate(sampleText, "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.HasPrefix(kit.Title, "Photosynthesis converts sunlight into ch") {
		t.Errorf("kit.Title = %q, want first 40 chars of first sentence", kit.Title)
	}
	if !strings.HasSuffix(kit.Title, "...") {
		t.Errorf("kit.Title = %q, want ellipsis suffix", kit.Title)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   \n\t "} {
		if _, err := generator.Generate(raw, "x"); !errors.Is(err, generator.ErrEmptyContent) {
			t.Errorf("Generate(%q) error = %v, want ErrEmptyContent", raw, err)
		}
	}
}

func TestGenerate_DeterministicArtifacts(t *testing.T) {
	first, err := generator.Generate(sampleText, "t")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	second, err := generator.Generate(sampleText, "t")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// id 和时间戳以外的内容必须逐字节一致
	for i := range first.Quiz {
		if first.Quiz[i].Question != second.Quiz[i].Question ||
			!reflect.DeepEqual(first.Quiz[i].Options, second.Quiz[i].Options) ||
			first.Quiz[i].AnswerIndex != second.Quiz[i].AnswerIndex {
			t.Errorf("quiz question %d differs between runs", i)
		}
	}
	if !reflect.DeepEqual(first.Flashcards, second.Flashcards) {
		t.Error("flashcards differ between runs")
	}
	if !reflect.DeepEqual(first.Plan, second.Plan) {
		t.Error("study plans differ between runs")
	}
	if first.Text != second.Text {
		t.Error("normalized text differs between runs")
	}
}

func TestGenerate_ChunkedInputStillProducesArtifacts(t *testing.T) {
	// 无句子边界的文本走定宽切块，仍要产出完整计划
	kit, err := generator.Generate(strings.Repeat("lorem ipsum dolor sit amet ", 30), "")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(kit.Plan) != generator.PlanDays {
		t.Errorf("len(Plan) = %d, want %d", len(kit.Plan), generator.PlanDays)
	}
	if len(kit.Quiz) == 0 {
		t.Error("quiz is empty for chunked input")
	}
	if len(kit.Flashcards) == 0 {
		t.Error("flashcards are empty for chunked input")
	}
}
