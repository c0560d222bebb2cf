package service

import (
	"context"
	"fmt"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// CommentService coordinates comment operations.
type CommentService interface {
	CreateComment(ctx context.Context, taskID, authorID int64, content string) (*domain.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) (*domain.Comment, error)
}

type commentService struct {
	comments repository.CommentRepository
	tasks    repository.TaskRepository
}

func NewCommentService(comments repository.CommentRepository, tasks repository.TaskRepository) CommentService {
	return &commentService{comments: comments, tasks: tasks}
}

func (s *commentService) CreateComment(ctx context.Context, taskID, authorID int64, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}

	// the comment must reference an existing task
	if _, err := s.tasks.Get(ctx, taskID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TaskID:  taskID,
		UserID:  authorID,
		Content: content,
	}

	if _, err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByTask(ctx context.Context, taskID int64) ([]domain.Comment, error) {
	return s.comments.ListByTask(ctx, taskID)
}

func (s *commentService) DeleteComment(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return nil, err
	}
	return comment, nil
}
