package repository

import (
	"context"
	"testing"

	"crit-server/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newTestCriticRepo(t *testing.T) *RedisCriticRepository {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCriticRepository(client)
}

func TestAddAndGetCritics(t *testing.T) {
	repo := newTestCriticRepo(t)
	ctx := context.Background()

	err := repo.AddCritic(ctx, "board1", models.Critic{ID: "c1", Name: "Ana", Color: "#ff0000"})
	assert.NoError(t, err)
	err = repo.AddCritic(ctx, "board1", models.Critic{ID: "c2", Name: "Ben", Color: "#00ff00"})
	assert.NoError(t, err)

	critics, err := repo.GetCritics(ctx, "board1")
	assert.NoError(t, err)
	assert.Len(t, critics, 2)
	assert.Equal(t, "Ana", critics[0].Name)
	assert.Equal(t, "Ben", critics[1].Name)
}

func TestGetCritics_EmptyBoard(t *testing.T) {
	repo := newTestCriticRepo(t)

	critics, err := repo.GetCritics(context.Background(), "empty-board")
	assert.NoError(t, err)
	assert.Empty(t, critics)
}

func TestRemoveCritic(t *testing.T) {
	repo := newTestCriticRepo(t)
	ctx := context.Background()

	repo.AddCritic(ctx, "board1", models.Critic{ID: "c1", Name: "Ana"})
	repo.AddCritic(ctx, "board1", models.Critic{ID: "c2", Name: "Ben"})

	err := repo.RemoveCritic(ctx, "board1", "c1")
	assert.NoError(t, err)

	critics, err := repo.GetCritics(ctx, "board1")
	assert.NoError(t, err)
	assert.Len(t, critics, 1)
	assert.Equal(t, "c2", critics[0].ID)
}

func TestRemoveCritic_KeepsBoardsIsolated(t *testing.T) {
	repo := newTestCriticRepo(t)
	ctx := context.Background()

	repo.AddCritic(ctx, "board1", models.Critic{ID: "c1", Name: "Ana"})
	repo.AddCritic(ctx, "board2", models.Critic{ID: "c1", Name: "Ana"})

	err := repo.RemoveCritic(ctx, "board1", "c1")
	assert.NoError(t, err)

	critics, _ := repo.GetCritics(ctx, "board1")
	assert.Empty(t, critics)

	critics, _ = repo.GetCritics(ctx, "board2")
	assert.Len(t, critics, 1)
}

func TestRemoveCritic_UnknownIDIsNoop(t *testing.T) {
	repo := newTestCriticRepo(t)
	ctx := context.Background()

	repo.AddCritic(ctx, "board1", models.Critic{ID: "c1", Name: "Ana"})

	err := repo.RemoveCritic(ctx, "board1", "ghost")
	assert.NoError(t, err)

	critics, _ := repo.GetCritics(ctx, "board1")
	assert.Len(t, critics, 1)
}
