package teacher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/school-backend/internal/auth"
)

type memRepo struct {
	teachers map[string]*Teacher
}

func newMemRepo() *memRepo {
	return &memRepo{teachers: make(map[string]*Teacher)}
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*Teacher, error) {
	t, ok := r.teachers[username]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *memRepo) Exists(_ context.Context, username string) (bool, error) {
	_, ok := r.teachers[username]
	return ok, nil
}

func (r *memRepo) Create(_ context.Context, t *Teacher) error {
	if _, ok := r.teachers[t.Username]; ok {
		return ErrUsernameTaken
	}
	copied := *t
	r.teachers[t.Username] = &copied
	return nil
}

func newTestService() (Service, *memRepo) {
	repo := newMemRepo()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Register(ctx, "mrodriguez", "Ms. Rodriguez", "chalk and talk")
	require.NoError(t, err)
	assert.Equal(t, "mrodriguez", created.Username)
	assert.NotEqual(t, "chalk and talk", created.PasswordHash)

	t.Run("correct password", func(t *testing.T) {
		logged, err := svc.Login(ctx, "mrodriguez", "chalk and talk")
		require.NoError(t, err)
		assert.Equal(t, "Ms. Rodriguez", logged.DisplayName)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "mrodriguez", "guess")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody", "chalk and talk")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "mrodriguez", "Impostor", "longenough")
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(ctx, "newcomer", "", "short")
		assert.Error(t, err)
	})
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, err := svc.Register(ctx, "mrodriguez", "", "chalk and talk")
	require.NoError(t, err)

	ok, err := svc.Exists(ctx, "mrodriguez")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	// Blank identity never hits the store.
	ok, err = svc.Exists(ctx, "   ")
	require.NoError(t, err)
	assert.False(t, ok)
}
