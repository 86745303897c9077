package announcement

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("announcement not found")
	ErrInvalidID       = errors.New("invalid announcement id")
	ErrTitleLength     = errors.New("title must be between 2 and 80 characters")
	ErrMessageLength   = errors.New("message must be between 2 and 300 characters")
	ErrEndDateRequired = errors.New("end date is required")
	ErrDateRange       = errors.New("end date must be after start date")
)

// Announcement is a school-wide notice shown while its display window
// (StartDate..EndDate) includes the current time. A nil StartDate means
// the announcement is visible as soon as it exists.
type Announcement struct {
	ID        string
	Title     string
	Message   string
	StartDate *time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
