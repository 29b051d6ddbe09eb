package service

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"skriptio_backend/internal/generator"
	"skriptio_backend/internal/model"
	"skriptio_backend/internal/repository"
	"skriptio_backend/internal/util"
	"skriptio_backend/pkg/logger"
	"skriptio_backend/pkg/monitoring"
)

// RecentLimit 最近列表固定返回5条
const RecentLimit = 5

// StudyService 生成入口：PDF或纯文本 → 学习资料 → 持久化
type StudyService struct {
	Repo    *repository.StudyContentRepository
	PDF     *PDFService
	Storage *StorageService
}

func NewStudyService(repo *repository.StudyContentRepository, pdfService *PDFService, storage *StorageService) *StudyService {
	return &StudyService{Repo: repo, PDF: pdfService, Storage: storage}
}

// GenerateInput 一次生成请求的输入，文件和文本至少提供其一
type GenerateInput struct {
	FileName string
	FileData []byte
	Text     string
	Title    string
}

// Generate 提取文本、生成学习资料并整体落库。
// 流水线任何一步失败都不会写入部分结果。
func (s *StudyService) Generate(ctx context.Context, in GenerateInput) (*model.StudyContent, error) {
	start := time.Now()

	var extracted string
	source := "text"
	if len(in.FileData) > 0 {
		if !util.HasPDFExtension(in.FileName) {
			return nil, util.ErrUnsupportedFile
		}
		text, err := s.PDF.ExtractText(in.FileData)
		if err != nil {
			monitoring.ExtractionFailures.Inc()
			return nil, err
		}
		extracted = text
		source = "pdf"
	}
	if in.Text != "" {
		if extracted != "" {
			extracted = extracted + "\n" + in.Text
			source = "pdf+text"
		} else {
			extracted = in.Text
		}
	}

	kit, err := generator.Generate(extracted, in.Title)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, kit); err != nil {
		return nil, err
	}

	// 留存源PDF，失败只记录，不影响生成结果
	if len(in.FileData) > 0 && s.Storage != nil {
		name := kit.ID + ".pdf"
		if _, err := s.Storage.Provider.Upload(ctx, name, bytes.NewReader(in.FileData), int64(len(in.FileData)), "application/pdf"); err != nil {
			logger.Log.Warn("failed to retain source pdf",
				zap.String("id", kit.ID), zap.Error(err))
		}
	}

	monitoring.KitsGenerated.WithLabelValues(source).Inc()
	monitoring.GenerationDuration.Observe(time.Since(start).Seconds())
	logger.Log.Info("study kit generated",
		zap.String("id", kit.ID),
		zap.String("source", source),
		zap.Int("quiz", len(kit.Quiz)),
		zap.Int("flashcards", len(kit.Flashcards)))
	return kit, nil
}

func (s *StudyService) GetContent(ctx context.Context, id string) (*model.StudyContent, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *StudyService) Recent(ctx context.Context) ([]model.StudyContentSummary, error) {
	return s.Repo.FindRecent(ctx, RecentLimit)
}
