package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/auth"
	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository with the same uniqueness
// semantics as the sqlite implementation.
type fakeUserRepo struct {
	nextID int64
	byName map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byName: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Init(context.Context) error { return nil }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (int64, error) {
	if _, ok := r.byName[user.Username]; ok {
		return 0, repository.ErrDuplicate
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now().UTC()
	clone := *user
	r.byName[user.Username] = &clone
	return user.ID, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.byName {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) List(context.Context) ([]domain.User, error) {
	var users []domain.User
	for _, user := range r.byName {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for name, user := range r.byName {
		if user.ID == id {
			delete(r.byName, name)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestUserService() (UserService, *auth.TokenService) {
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	return NewUserService(newFakeUserRepo(), tokens), tokens
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, tokens := newTestUserService()

	user, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.PasswordHash, "credential hash must never be returned")

	tok, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	claims, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestUserService()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "different")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestUserService()

	_, err := svc.Register(ctx, "", "s3cret")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLogin_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestUserService()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, "alice", "wrong")
	_, unknownUser := svc.Login(ctx, "nobody", "s3cret")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}
