package announcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UpdateFields lists the columns a partial update writes. Nil pointer
// fields are not touched; UpdatedAt is always written.
type UpdateFields struct {
	Title     *string
	Message   *string
	StartDate *time.Time
	EndDate   *time.Time
	UpdatedAt time.Time
}

type Repository interface {
	ListActive(ctx context.Context, now time.Time) ([]*Announcement, error)
	ListAll(ctx context.Context) ([]*Announcement, error)
	GetByID(ctx context.Context, id string) (*Announcement, error)
	Create(ctx context.Context, a *Announcement) error
	Update(ctx context.Context, id string, fields UpdateFields) (*Announcement, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const announcementColumns = "id, title, message, start_date, end_date, created_at, updated_at"

func (r *pgxRepository) ListActive(ctx context.Context, now time.Time) ([]*Announcement, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(announcementColumns).
		From("public.announcements").
		Where(squirrel.And{
			squirrel.GtOrEq{"end_date": now},
			squirrel.Or{
				squirrel.Eq{"start_date": nil},
				squirrel.LtOrEq{"start_date": now},
			},
		}).
		OrderBy("end_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list active announcements query failed: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Announcement, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(announcementColumns).
		From("public.announcements").
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list announcements query failed: %w", err)
	}

	return r.queryMany(ctx, query, args)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Announcement, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(announcementColumns).
		From("public.announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get announcement query failed: %w", err)
	}

	a, err := scanAnnouncement(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get announcement failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) Create(ctx context.Context, a *Announcement) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.announcements").
		Columns("title", "message", "start_date", "end_date", "created_at", "updated_at").
		Values(a.Title, a.Message, a.StartDate, a.EndDate, a.CreatedAt, a.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create announcement query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&a.ID); err != nil {
		return fmt.Errorf("create announcement failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Update(ctx context.Context, id string, fields UpdateFields) (*Announcement, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	builder := psql.Update("public.announcements").
		Set("updated_at", fields.UpdatedAt)

	if fields.Title != nil {
		builder = builder.Set("title", *fields.Title)
	}
	if fields.Message != nil {
		builder = builder.Set("message", *fields.Message)
	}
	if fields.StartDate != nil {
		builder = builder.Set("start_date", *fields.StartDate)
	}
	if fields.EndDate != nil {
		builder = builder.Set("end_date", *fields.EndDate)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + announcementColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update announcement query failed: %w", err)
	}

	a, err := scanAnnouncement(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update announcement failed: %w", err)
	}
	return a, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.announcements").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete announcement query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete announcement failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) queryMany(ctx context.Context, query string, args []any) ([]*Announcement, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list announcements failed: %w", err)
	}
	defer rows.Close()

	var result []*Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement failed: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list announcements failed: %w", err)
	}

	return result, nil
}

func scanAnnouncement(row pgx.Row) (*Announcement, error) {
	var a Announcement
	if err := row.Scan(
		&a.ID, &a.Title, &a.Message, &a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
