package generator_test

import (
	"strings"
	"testing"

	"skriptio_backend/internal/generator"
)

func TestBuildFlashcards_FullDeck(t *testing.T) {
	sentences, keywords := sampleInputs(t)
	cards := generator.BuildFlashcards(sentences, keywords, generator.FlashcardCount)
	if len(cards) != generator.FlashcardCount {
		t.Fatalf("BuildFlashcards() returned %d cards, want %d", len(cards), generator.FlashcardCount)
	}
	for i, c := range cards {
		if c.Front == "" || c.Back == "" {
			t.Errorf("card %d has empty side: %+v", i, c)
		}
	}
	// 第一张卡对应排名最高的关键词
	if cards[0].Front != "Define: photosynthesis" {
		t.Errorf("cards[0].Front = %q, want %q", cards[0].Front, "Define: photosynthesis")
	}
}

func TestBuildFlashcards_BackTruncation(t *testing.T) {
	long := strings.Repeat("neuron fires in ordered bursts ", 10) // 310 chars
	cards := generator.BuildFlashcards([]string{long}, []string{"neuron"}, 1)
	if len(cards) != 1 {
		t.Fatalf("BuildFlashcards() returned %d cards, want 1", len(cards))
	}
	if len(cards[0].Back) != 280 {
		t.Errorf("Back length = %d, want exactly 280", len(cards[0].Back))
	}
	if !strings.HasSuffix(cards[0].Back, "...") {
		t.Errorf("Back = %q, want ellipsis suffix", cards[0].Back)
	}
}

func TestBuildFlashcards_PaddingCyclesSentences(t *testing.T) {
	sentences := []string{
		"First supporting sentence about the topic in question here.",
		"Second supporting sentence about the very same topic here too.",
	}
	cards := generator.BuildFlashcards(sentences, nil, 5)
	if len(cards) != 5 {
		t.Fatalf("BuildFlashcards() returned %d cards, want 5", len(cards))
	}
	for i, c := range cards {
		if c.Front != "Key idea?" {
			t.Errorf("card %d front = %q, want %q", i, c.Front, "Key idea?")
		}
		if want := sentences[i%len(sentences)]; c.Back != want {
			t.Errorf("card %d back = %q, want %q", i, c.Back, want)
		}
	}
}

func TestBuildFlashcards_NoSentences(t *testing.T) {
	// 句子为空时不能进入补卡循环
	cards := generator.BuildFlashcards(nil, []string{"orphan"}, 12)
	if len(cards) != 0 {
		t.Errorf("BuildFlashcards() returned %d cards, want 0", len(cards))
	}
}
