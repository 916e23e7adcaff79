package service

import (
	"context"

	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
)

type GameService interface {
	GetAll(ctx context.Context, page, pageSize int) ([]models.Game, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Game, error)
}

type gameService struct {
	repo *repository.GameRepo
}

func NewGameService(repo *repository.GameRepo) GameService {
	return &gameService{repo: repo}
}

func (s *gameService) GetAll(ctx context.Context, page, pageSize int) ([]models.Game, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.GetAll(ctx, page, pageSize)
}

func (s *gameService) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	return s.repo.GetByID(ctx, id)
}
