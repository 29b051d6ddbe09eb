package repository

import (
	"context"

	"gorm.io/gorm"

	"skriptio_backend/internal/model"
)

type StatusCheckRepository struct {
	DB *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) *StatusCheckRepository {
	return &StatusCheckRepository{DB: db}
}

func (r *StatusCheckRepository) Create(ctx context.Context, check *model.StatusCheck) error {
	return r.DB.WithContext(ctx).Create(check).Error
}

func (r *StatusCheckRepository) FindAll(ctx context.Context, limit int) ([]model.StatusCheck, error) {
	var checks []model.StatusCheck
	err := r.DB.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&checks).Error
	return checks, err
}
