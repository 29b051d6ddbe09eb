package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"skriptio_backend/internal/util"
	"skriptio_backend/pkg/logger"
)

// PDFService 纯Go实现的PDF文本提取，无需外部依赖
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText 逐页提取文本，页与页之间用换行连接。
// 单页失败只跳过并记录，不中断整个文档。
func (s *PDFService) ExtractText(data []byte) (string, error) {
	if !util.IsPDF(data) {
		return "", util.ErrUnsupportedFile
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", util.ErrExtraction, err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Log.Warn("page extraction failed, skipping",
				zap.Int("page", i), zap.Error(err))
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			pages = append(pages, trimmed)
		}
	}
	return strings.Join(pages, "\n"), nil
}

// PageCount 返回PDF页数
func (s *PDFService) PageCount(data []byte) (int, error) {
	if !util.IsPDF(data) {
		return 0, util.ErrUnsupportedFile
	}
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", util.ErrExtraction, err)
	}
	return reader.NumPage(), nil
}
