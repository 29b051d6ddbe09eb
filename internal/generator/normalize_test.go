package generator_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"skriptio_backend/internal/generator"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got, err := generator.Normalize("  hello \t world\n\nagain  ")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got != "hello world again" {
		t.Errorf("Normalize() = %q, want %q", got, "hello world again")
	}
}

func TestNormalize_TruncatesOversizedInput(t *testing.T) {
	raw := strings.Repeat("a", generator.MaxContentLen+5000)
	got, err := generator.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(got) != generator.MaxContentLen {
		t.Errorf("len(Normalize()) = %d, want %d", len(got), generator.MaxContentLen)
	}
}

func TestNormalize_TruncatesOnRuneBoundary(t *testing.T) {
	// "a"前缀让每个2字节rune都起始于奇数位，上限正好落在rune中间
	raw := "a" + strings.Repeat("é", generator.MaxContentLen)
	got, err := generator.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !utf8.ValidString(got) {
		t.Fatal("Normalize() produced invalid UTF-8")
	}
	if len(got) != generator.MaxContentLen-1 {
		t.Errorf("len(Normalize()) = %d, want %d", len(got), generator.MaxContentLen-1)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t  \n"} {
		_, err := generator.Normalize(raw)
		if !errors.Is(err, generator.ErrEmptyContent) {
			t.Errorf("Normalize(%q) error = %v, want ErrEmptyContent", raw, err)
		}
	}
}
