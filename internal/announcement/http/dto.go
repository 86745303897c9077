package http

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mergington/school-backend/internal/announcement"
)

// isoTime accepts the timestamp shapes clients actually send: RFC 3339 with
// an offset, a naive date-time (taken as UTC), or a bare date.
type isoTime struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *isoTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q", s)
}

type CreateBody struct {
	Title     string   `json:"title" binding:"required"`
	Message   string   `json:"message" binding:"required"`
	StartDate *isoTime `json:"start_date"`
	EndDate   *isoTime `json:"end_date"`
}

// UpdateBody carries a partial update; absent fields (and explicit nulls)
// leave the stored value unchanged.
type UpdateBody struct {
	Title     *string  `json:"title"`
	Message   *string  `json:"message"`
	StartDate *isoTime `json:"start_date"`
	EndDate   *isoTime `json:"end_date"`
}

type Response struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	StartDate *time.Time `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewResponse(a *announcement.Announcement) Response {
	return Response{
		ID:        a.ID,
		Title:     a.Title,
		Message:   a.Message,
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Status string `json:"status"`
}

func timePtr(t *isoTime) *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}
