package generator_test

import (
	"reflect"
	"testing"

	"skriptio_backend/internal/generator"
)

func TestTopKeywords_FrequencyThenLexical(t *testing.T) {
	got := generator.TopKeywords("cat cat dog dog dog bird", 10)
	want := []string{"dog", "cat", "bird"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywords_FiltersStopwordsAndShortTokens(t *testing.T) {
	got := generator.TopKeywords("the photosynthesis and the ox is in photosynthesis", 10)
	want := []string{"photosynthesis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopKeywords() = %v, want %v", got, want)
	}
}

func TestTopKeywords_RespectsLimit(t *testing.T) {
	got := generator.TopKeywords("alpha beta gamma delta epsilon", 3)
	if len(got) != 3 {
		t.Errorf("TopKeywords() returned %d keywords, want 3", len(got))
	}
}

func TestTopKeywords_Deterministic(t *testing.T) {
	text := "neuron synapse axon dendrite neuron cortex synapse glia neuron axon"
	first := generator.TopKeywords(text, 14)
	for i := 0; i < 20; i++ {
		if got := generator.TopKeywords(text, 14); !reflect.DeepEqual(got, first) {
			t.Fatalf("TopKeywords() not deterministic: %v vs %v", got, first)
		}
	}
}

func TestTokenize_KeepsHyphensAndApostrophes(t *testing.T) {
	got := generator.Tokenize("Self-Paced learner's guide 42")
	want := []string{"self-paced", "learner's", "guide"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}
