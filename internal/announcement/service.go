package announcement

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type CreateRequest struct {
	Title     string
	Message   string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateRequest carries a partial update. A nil field is left unchanged;
// start_date cannot be cleared once set.
type UpdateRequest struct {
	Title     *string
	Message   *string
	StartDate *time.Time
	EndDate   *time.Time
}

type Service interface {
	ListActive(ctx context.Context) ([]*Announcement, error)
	ListAll(ctx context.Context) ([]*Announcement, error)
	Create(ctx context.Context, req CreateRequest) (*Announcement, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ListActive returns announcements whose display window includes the current
// time, soonest-expiring first.
func (s *service) ListActive(ctx context.Context) ([]*Announcement, error) {
	return s.repo.ListActive(ctx, time.Now().UTC())
}

func (s *service) ListAll(ctx context.Context) ([]*Announcement, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Announcement, error) {
	title, err := validateText(req.Title, 80, ErrTitleLength)
	if err != nil {
		return nil, err
	}
	message, err := validateText(req.Message, 300, ErrMessageLength)
	if err != nil {
		return nil, err
	}

	start := normalizeUTC(req.StartDate)
	end := normalizeUTC(req.EndDate)
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a := &Announcement{
		Title:     title,
		Message:   message,
		StartDate: start,
		EndDate:   *end,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Announcement, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var fields UpdateFields

	if req.Title != nil {
		title, err := validateText(*req.Title, 80, ErrTitleLength)
		if err != nil {
			return nil, err
		}
		fields.Title = &title
	}

	if req.Message != nil {
		message, err := validateText(*req.Message, 300, ErrMessageLength)
		if err != nil {
			return nil, err
		}
		fields.Message = &message
	}

	fields.StartDate = normalizeUTC(req.StartDate)
	fields.EndDate = normalizeUTC(req.EndDate)

	// The range invariant must hold for the merged record, not just the
	// fields present in the payload.
	mergedStart := existing.StartDate
	if fields.StartDate != nil {
		mergedStart = fields.StartDate
	}
	mergedEnd := &existing.EndDate
	if fields.EndDate != nil {
		mergedEnd = fields.EndDate
	}
	if err := validateRange(mergedStart, mergedEnd); err != nil {
		return nil, err
	}

	fields.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, fields)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

// validateText trims the value and checks its length in runes against
// 2..max. lengthErr is returned for both too-short (including blank after
// trim) and too-long values.
func validateText(value string, max int, lengthErr error) (string, error) {
	cleaned := strings.TrimSpace(value)
	n := utf8.RuneCountInString(cleaned)
	if n < 2 || n > max {
		return "", lengthErr
	}
	return cleaned, nil
}

func validateRange(start, end *time.Time) error {
	if end == nil {
		return ErrEndDateRequired
	}
	if start != nil && end.Before(*start) {
		return ErrDateRange
	}
	return nil
}

// normalizeUTC converts a timestamp to UTC without touching the instant.
func normalizeUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
