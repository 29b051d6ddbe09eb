package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"skriptio_backend/internal/model"
	"skriptio_backend/internal/util"
)

const (
	recentCacheKey = "skriptio:recent"
	recentCacheTTL = 5 * time.Minute
)

type StudyContentRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStudyContentRepository(db *gorm.DB, rdb *redis.Client) *StudyContentRepository {
	return &StudyContentRepository{DB: db, Redis: rdb}
}

func (r *StudyContentRepository) Create(ctx context.Context, content *model.StudyContent) error {
	if err := r.DB.WithContext(ctx).Create(content).Error; err != nil {
		return err
	}
	// 新内容写入后让最近列表缓存失效
	r.Redis.Del(ctx, recentCacheKey)
	return nil
}

func (r *StudyContentRepository) FindByID(ctx context.Context, id string) (*model.StudyContent, error) {
	var content model.StudyContent
	err := r.DB.WithContext(ctx).First(&content, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// FindRecent 最近生成的内容，新的在前；结果短暂缓存在Redis
func (r *StudyContentRepository) FindRecent(ctx context.Context, limit int) ([]model.StudyContentSummary, error) {
	if cached, err := r.Redis.Get(ctx, recentCacheKey).Result(); err == nil {
		var items []model.StudyContentSummary
		if json.Unmarshal([]byte(cached), &items) == nil && len(items) <= limit {
			return items, nil
		}
	}

	var items []model.StudyContentSummary
	err := r.DB.WithContext(ctx).
		Model(&model.StudyContent{}).
		Select("id", "title", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(items); err == nil {
		r.Redis.Set(ctx, recentCacheKey, encoded, recentCacheTTL)
	}
	return items, nil
}
