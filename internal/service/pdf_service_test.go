package service_test

import (
	"errors"
	"testing"

	"skriptio_backend/internal/service"
	"skriptio_backend/internal/util"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	svc := service.NewPDFService()

	_, err := svc.ExtractText([]byte("plain text, not a pdf"))
	if !errors.Is(err, util.ErrUnsupportedFile) {
		t.Fatalf("ExtractText() error = %v, want ErrUnsupportedFile", err)
	}
}

func TestExtractTextRejectsTruncatedPDF(t *testing.T) {
	svc := service.NewPDFService()

	// 有魔数但结构不完整
	_, err := svc.ExtractText([]byte("%PDF-1.7\nbroken"))
	if !errors.Is(err, util.ErrExtraction) {
		t.Fatalf("ExtractText() error = %v, want ErrExtraction", err)
	}
}
