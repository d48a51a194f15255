package repository

import (
	"context"
	"encoding/json"

	"crit-server/models"

	"github.com/go-redis/redis/v8"
)

type CriticRepositoryInterface interface {
	AddCritic(ctx context.Context, boardID string, critic models.Critic) error
	GetCritics(ctx context.Context, boardID string) ([]models.Critic, error)
	RemoveCritic(ctx context.Context, boardID, criticID string) error
}

// RedisCriticRepository keeps the live critic list of each board in a Redis
// list. Presence only; the list is rebuilt on removal.
type RedisCriticRepository struct {
	client *redis.Client
}

func NewRedisCriticRepository(client *redis.Client) *RedisCriticRepository {
	return &RedisCriticRepository{client: client}
}

func criticKey(boardID string) string {
	return "board:" + boardID + ":critics"
}

func (r *RedisCriticRepository) AddCritic(ctx context.Context, boardID string, critic models.Critic) error {
	data, err := json.Marshal(critic)
	if err != nil {
		return err
	}
	return r.client.RPush(ctx, criticKey(boardID), data).Err()
}

func (r *RedisCriticRepository) GetCritics(ctx context.Context, boardID string) ([]models.Critic, error) {
	data, err := r.client.LRange(ctx, criticKey(boardID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	critics := []models.Critic{}
	for _, item := range data {
		var c models.Critic
		if err := json.Unmarshal([]byte(item), &c); err == nil {
			critics = append(critics, c)
		}
	}
	return critics, nil
}

func (r *RedisCriticRepository) RemoveCritic(ctx context.Context, boardID, criticID string) error {
	critics, err := r.GetCritics(ctx, boardID)
	if err != nil {
		return err
	}
	remaining := []models.Critic{}
	for _, c := range critics {
		if c.ID != criticID {
			remaining = append(remaining, c)
		}
	}
	if err := r.client.Del(ctx, criticKey(boardID)).Err(); err != nil {
		return err
	}
	for _, c := range remaining {
		if err := r.AddCritic(ctx, boardID, c); err != nil {
			return err
		}
	}
	return nil
}
