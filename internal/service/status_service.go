package service

import (
	"context"

	"skriptio_backend/internal/model"
	"skriptio_backend/internal/repository"
)

const statusListLimit = 1000

type StatusService struct {
	Repo *repository.StatusCheckRepository
}

func NewStatusService(repo *repository.StatusCheckRepository) *StatusService {
	return &StatusService{Repo: repo}
}

func (s *StatusService) Record(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	check := &model.StatusCheck{ClientName: clientName}
	if err := s.Repo.Create(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *StatusService) List(ctx context.Context) ([]model.StatusCheck, error) {
	return s.Repo.FindAll(ctx, statusListLimit)
}
