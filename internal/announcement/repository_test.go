package announcement

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/school-backend/migrations"
)

// newTestRepo connects to the database named by TEST_DB_DSN and starts
// from an empty announcements table. Skipped when the variable is unset.
func newTestRepo(t *testing.T) Repository {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.Up(ctx, pool))

	_, err = pool.Exec(ctx, "TRUNCATE TABLE public.announcements")
	require.NoError(t, err)

	return NewPgxRepository(pool)
}

func TestPgxRepositoryCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := &Announcement{
		Title:     "Sports day",
		Message:   "On the main field",
		EndDate:   now.Add(24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}

	require.NoError(t, repo.Create(ctx, a))
	require.NotEmpty(t, a.ID)

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Title, fetched.Title)
	assert.Nil(t, fetched.StartDate)
	assert.True(t, fetched.EndDate.Equal(a.EndDate))

	t.Run("partial update writes only supplied columns", func(t *testing.T) {
		newTitle := "Sports day moved"
		updated, err := repo.Update(ctx, a.ID, UpdateFields{
			Title:     &newTitle,
			UpdatedAt: now.Add(time.Minute),
		})
		require.NoError(t, err)
		assert.Equal(t, newTitle, updated.Title)
		assert.Equal(t, a.Message, updated.Message)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	})

	t.Run("update unknown id", func(t *testing.T) {
		title := "Ghost"
		_, err := repo.Update(ctx, "00000000-0000-0000-0000-000000000000", UpdateFields{
			Title:     &title,
			UpdatedAt: now,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, a.ID))
		assert.ErrorIs(t, repo.Delete(ctx, a.ID), ErrNotFound)

		_, err := repo.GetByID(ctx, a.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPgxRepositoryListActive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)

	insert := func(title string, start *time.Time, end time.Time) {
		t.Helper()
		require.NoError(t, repo.Create(ctx, &Announcement{
			Title:     title,
			Message:   "details inside",
			StartDate: start,
			EndDate:   end,
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}

	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	insert("expired", nil, past)
	insert("not started", &future, now.Add(2*time.Hour))
	insert("in window", &past, future)
	insert("open ended start", nil, now.Add(3*time.Hour))

	active, err := repo.ListActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, active, 2)

	// Ascending by end date.
	assert.Equal(t, "in window", active[0].Title)
	assert.Equal(t, "open ended start", active[1].Title)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
