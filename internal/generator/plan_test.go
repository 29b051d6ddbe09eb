package generator_test

import (
	"fmt"
	"strings"
	"testing"

	"skriptio_backend/internal/generator"
)

func TestBuildStudyPlan_SevenDaysThreeObjectives(t *testing.T) {
	sentences, keywords := sampleInputs(t)
	plan := generator.BuildStudyPlan(sentences, keywords)
	if len(plan) != generator.PlanDays {
		t.Fatalf("BuildStudyPlan() returned %d days, want %d", len(plan), generator.PlanDays)
	}
	for i, day := range plan {
		if day.Day != i+1 {
			t.Errorf("plan[%d].Day = %d, want %d", i, day.Day, i+1)
		}
		if len(day.Objectives) != 3 {
			t.Errorf("day %d has %d objectives, want 3", day.Day, len(day.Objectives))
		}
		want := fmt.Sprintf("Day %d: %s", i+1, keywords[i%len(keywords)])
		if day.Title != want {
			t.Errorf("day %d title = %q, want %q", day.Day, day.Title, want)
		}
	}
}

func TestBuildStudyPlan_ObjectiveTruncation(t *testing.T) {
	long := strings.Repeat("a detailed objective sentence ", 6) // 180 chars
	plan := generator.BuildStudyPlan([]string{long, long, long, long, long, long, long}, []string{"topic"})
	obj := plan[0].Objectives[0]
	if len(obj) != 120 {
		t.Errorf("objective length = %d, want 120", len(obj))
	}
	if !strings.HasSuffix(obj, "...") {
		t.Errorf("objective = %q, want ellipsis suffix", obj)
	}
}

func TestBuildStudyPlan_KeywordPadding(t *testing.T) {
	sentences := []string{"Only one usable sentence appears in this entire document."}
	keywords := []string{"alpha", "beta", "gamma", "delta"}
	plan := generator.BuildStudyPlan(sentences, keywords)

	// 第一天：句子 + 两个关键词目标
	day1 := plan[0].Objectives
	if day1[0] != sentences[0] {
		t.Errorf("day 1 objective 0 = %q", day1[0])
	}
	if day1[1] != "Review concept: alpha" || day1[2] != "Review concept: beta" {
		t.Errorf("day 1 keyword padding = %v", day1[1:])
	}

	// 后面的天数：补词下标越界时收缩，再用通用目标填满
	for _, day := range plan[1:] {
		if len(day.Objectives) != 3 {
			t.Fatalf("day %d has %d objectives, want 3", day.Day, len(day.Objectives))
		}
	}
	last := plan[6].Objectives
	for _, obj := range last {
		if strings.HasPrefix(obj, "Review concept:") {
			t.Errorf("day 7 should have exhausted the keyword list, got %q", obj)
		}
	}
}

func TestBuildStudyPlan_NoKeywords(t *testing.T) {
	plan := generator.BuildStudyPlan([]string{"A single sentence long enough to survive filtering."}, nil)
	for i, day := range plan {
		if want := fmt.Sprintf("Day %d: Focus", i+1); day.Title != want {
			t.Errorf("day %d title = %q, want %q", i+1, day.Title, want)
		}
		if len(day.Objectives) != 3 {
			t.Errorf("day %d has %d objectives, want 3", i+1, len(day.Objectives))
		}
	}
}
