package repository

import (
	"context"

	"taskboard/internal/domain"
)

// CommentRepository manages comments attached to tasks.
type CommentRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, comment *domain.Comment) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}
