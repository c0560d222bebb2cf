package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

func seedUser(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	id, err := users.Create(ctx, &domain.User{Username: "owner", PasswordHash: "x"})
	require.NoError(t, err)
	return id
}

func TestTaskRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	ownerID := seedUser(t, db)

	repo := NewTaskRepository(db)
	require.NoError(t, repo.Init(ctx))

	task := &domain.Task{UserID: ownerID, Title: "write report"}
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)

	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", got.Title)
	assert.Equal(t, ownerID, got.UserID)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, repo.Delete(ctx, task.ID))
	_, err = repo.Get(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	ownerID := seedUser(t, db)

	repo := NewTaskRepository(db)
	require.NoError(t, repo.Init(ctx))

	task := &domain.Task{UserID: ownerID, Title: "initial", Description: "desc"}
	_, err := repo.Create(ctx, task)
	require.NoError(t, err)

	status := domain.TaskStatusDone
	updated, err := repo.Update(ctx, task.ID, repository.TaskUpdate{Status: &status})
	require.NoError(t, err)

	// untouched fields survive a partial update
	assert.Equal(t, "initial", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)

	title := "renamed"
	updated, err = repo.Update(ctx, task.ID, repository.TaskUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	seedUser(t, db)

	repo := NewTaskRepository(db)
	require.NoError(t, repo.Init(ctx))

	title := "x"
	_, err := repo.Update(ctx, 123, repository.TaskUpdate{Title: &title})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
