package service

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"skriptio_backend/internal/config"
	"skriptio_backend/internal/util"
	"skriptio_backend/pkg/logger"
)

const (
	// DefaultOCRPages 默认最多识别8页
	DefaultOCRPages = 8
	// DefaultOCRScale 默认渲染比例
	DefaultOCRScale = 1.6

	minOCRScale = 1.2
	maxOCRScale = 2.5

	baseRenderDPI = 72
)

// OCRService 把PDF页面渲染成图片后交给外部OCR引擎识别。
// 引擎句柄进程级唯一：首次使用时探测可用性，进程退出时统一清理工作目录。
type OCRService struct {
	cfg *config.OCRConfig
	pdf *PDFService

	once      sync.Once
	available bool
	workDir   string
}

func NewOCRService(cfg *config.OCRConfig, pdfService *PDFService) *OCRService {
	return &OCRService{cfg: cfg, pdf: pdfService}
}

// ensureEngine 首次调用时探测 pdftoppm/tesseract 并准备工作目录
func (s *OCRService) ensureEngine() error {
	s.once.Do(func() {
		if _, err := exec.LookPath("pdftoppm"); err != nil {
			logger.Log.Warn("pdftoppm not found, OCR disabled", zap.Error(err))
			return
		}
		if _, err := exec.LookPath("tesseract"); err != nil {
			logger.Log.Warn("tesseract not found, OCR disabled", zap.Error(err))
			return
		}
		dir := s.cfg.WorkDir
		if dir == "" {
			dir = filepath.Join(os.TempDir(), "skriptio-ocr")
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Log.Warn("failed to create OCR work dir", zap.Error(err))
			return
		}
		s.workDir = dir
		s.available = true
	})
	if !s.available {
		return util.ErrOCRUnavailable
	}
	return nil
}

// ClampPages 页数预算：缺省取 DefaultOCRPages，收缩到 [1, total]
func ClampPages(requested, total int) int {
	if requested <= 0 {
		requested = DefaultOCRPages
	}
	if requested > total {
		requested = total
	}
	if requested < 1 {
		requested = 1
	}
	return requested
}

// ClampScale 渲染比例收缩到 [1.2, 2.5]，缺省 1.6
func ClampScale(scale float64) float64 {
	if scale <= 0 {
		scale = DefaultOCRScale
	}
	if scale < minOCRScale {
		scale = minOCRScale
	}
	if scale > maxOCRScale {
		scale = maxOCRScale
	}
	return scale
}

// Recognize 渲染前N页并逐页OCR，行文本按页拼接后返回。
// 单页识别失败跳过并记录；没有任何识别结果时返回空串。
func (s *OCRService) Recognize(ctx context.Context, data []byte, maxPages int, scale float64) (string, error) {
	if err := s.ensureEngine(); err != nil {
		return "", err
	}

	total, err := s.pdf.PageCount(data)
	if err != nil {
		return "", err
	}
	pages := ClampPages(maxPages, total)
	dpi := int(baseRenderDPI * ClampScale(scale))

	tmpDir, err := os.MkdirTemp(s.workDir, "job-")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	pdfPath := filepath.Join(tmpDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0600); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, "pdftoppm",
		"-f", "1", "-l", strconv.Itoa(pages),
		"-r", strconv.Itoa(dpi),
		"-png", pdfPath, filepath.Join(tmpDir, "page"))
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: pdftoppm: %v: %s", util.ErrExtraction, err, out)
	}

	images, err := filepath.Glob(filepath.Join(tmpDir, "page-*.png"))
	if err != nil {
		return "", err
	}
	sort.Strings(images)

	var parts []string
	for _, img := range images {
		out, err := exec.CommandContext(ctx, "tesseract", img, "stdout").Output()
		if err != nil {
			logger.Log.Warn("ocr page failed, skipping",
				zap.String("image", filepath.Base(img)), zap.Error(err))
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}

// Shutdown 进程退出时清理工作目录
func (s *OCRService) Shutdown() {
	if s.workDir != "" {
		os.RemoveAll(s.workDir)
	}
}
