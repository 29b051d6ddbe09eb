package generator_test

import (
	"strings"
	"testing"

	"skriptio_backend/internal/generator"
)

func TestSplitSentences_DropsShortFragments(t *testing.T) {
	text := "Hi. This is a long enough sentence to pass the length filter okay."
	got := generator.SplitSentences(text)
	if len(got) != 1 {
		t.Fatalf("SplitSentences() returned %d sentences, want 1: %v", len(got), got)
	}
	want := "This is a long enough sentence to pass the length filter okay."
	if got[0] != want {
		t.Errorf("SplitSentences()[0] = %q, want %q", got[0], want)
	}
}

func TestSplitSentences_PreservesOrder(t *testing.T) {
	text := "The mitochondria is the powerhouse of the cell. " +
		"Ribosomes assemble proteins from amino acid chains! " +
		"Does the nucleus contain the genetic material of the cell?"
	got := generator.SplitSentences(text)
	if len(got) != 3 {
		t.Fatalf("SplitSentences() returned %d sentences, want 3: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "The mitochondria") {
		t.Errorf("first sentence = %q", got[0])
	}
	if !strings.HasSuffix(got[1], "chains!") {
		t.Errorf("second sentence = %q, want terminator kept", got[1])
	}
	if !strings.HasSuffix(got[2], "cell?") {
		t.Errorf("third sentence = %q, want terminator kept", got[2])
	}
}

func TestSplitSentences_UnterminatedTextIsOneSentence(t *testing.T) {
	// 无终止符但够长：整段算一个句子，不走切块
	text := strings.Repeat("x", 500)
	got := generator.SplitSentences(text)
	if len(got) != 1 {
		t.Fatalf("SplitSentences() returned %d sentences, want 1", len(got))
	}
	if got[0] != text {
		t.Errorf("SplitSentences()[0] length = %d, want %d", len(got[0]), len(text))
	}
}

func TestSplitSentences_ChunkFallback(t *testing.T) {
	// 每个片段都短于30字符，分句结果为空，退化为160字符定宽切块
	text := strings.Repeat("ab. ", 100)
	got := generator.SplitSentences(text)
	if len(got) != 3 {
		t.Fatalf("SplitSentences() returned %d chunks, want 3: %v", len(got), got)
	}
	for i, c := range got[:2] {
		if len(c) != 160 {
			t.Errorf("chunk %d length = %d, want 160", i, len(c))
		}
	}
	if len(got[2]) != 80 {
		t.Errorf("last chunk length = %d, want 80", len(got[2]))
	}
}

func TestSplitSentences_ChunkFallbackCapped(t *testing.T) {
	// 切块只覆盖前2000个字符
	text := strings.Repeat("ab. ", 1250)
	got := generator.SplitSentences(text)
	if len(got) != 13 {
		t.Fatalf("SplitSentences() returned %d chunks, want 13", len(got))
	}
	total := 0
	for _, c := range got {
		total += len(c)
	}
	if total != 2000 {
		t.Errorf("fallback chunks cover %d chars, want 2000", total)
	}
}
