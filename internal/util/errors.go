package util

import "errors"

var (
	ErrUnsupportedFile = errors.New("only PDF files are supported")
	ErrContentNotFound = errors.New("content not found")
	ErrExtraction      = errors.New("failed to extract text from document")
	ErrOCRUnavailable  = errors.New("ocr engine is not available")
)
