package teacher

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing teacher identity records.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Teacher, error)
	Exists(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, t *Teacher) error
}

type pgxTeacherRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxTeacherRepository{pool: pool}
}

func (r *pgxTeacherRepository) GetByUsername(ctx context.Context, username string) (*Teacher, error) {
	const query = `
		SELECT username, display_name, password_hash, created_at
		FROM public.teachers
		WHERE username = $1
	`

	row := r.pool.QueryRow(ctx, query, username)

	var t Teacher
	if err := row.Scan(&t.Username, &t.DisplayName, &t.PasswordHash, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get teacher failed: %w", err)
	}
	return &t, nil
}

func (r *pgxTeacherRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM public.teachers WHERE username = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check teacher exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxTeacherRepository) Create(ctx context.Context, t *Teacher) error {
	const query = `
		INSERT INTO public.teachers (username, display_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, t.Username, t.DisplayName, t.PasswordHash).
		Scan(&t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create teacher failed: %w", err)
	}
	return nil
}
