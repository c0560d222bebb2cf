package repository

import (
	"context"

	"taskboard/internal/domain"
)

// TaskUpdate carries a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository exposes persistence operations for Task entities.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id int64, upd TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
