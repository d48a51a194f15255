package service

import (
	"context"

	"crit-server/models"
	"crit-server/repository"
)

type CriticService struct {
	repo repository.CriticRepositoryInterface
}

func NewCriticService(repo repository.CriticRepositoryInterface) *CriticService {
	return &CriticService{repo: repo}
}

func (cs *CriticService) AddCritic(ctx context.Context, boardID string, critic models.Critic) error {
	return cs.repo.AddCritic(ctx, boardID, critic)
}

func (cs *CriticService) GetCritics(ctx context.Context, boardID string) ([]models.Critic, error) {
	return cs.repo.GetCritics(ctx, boardID)
}

func (cs *CriticService) RemoveCritic(ctx context.Context, boardID, criticID string) error {
	return cs.repo.RemoveCritic(ctx, boardID, criticID)
}
