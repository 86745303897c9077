package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/school-backend/internal/announcement"
)

func TestIsoTimeUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339 with offset",
			input: `"2026-09-01T10:00:00+02:00"`,
			want:  time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339 utc",
			input: `"2026-09-01T10:00:00Z"`,
			want:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "naive datetime coerced to utc",
			input: `"2026-09-01T10:00:00"`,
			want:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: `"2026-09-01"`,
			want:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts isoTime
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.True(t, ts.Time.Equal(tc.want), "got %s want %s", ts.Time, tc.want)
		})
	}

	t.Run("garbage rejected", func(t *testing.T) {
		var ts isoTime
		assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
	})

	t.Run("non string rejected", func(t *testing.T) {
		var ts isoTime
		assert.Error(t, json.Unmarshal([]byte(`12345`), &ts))
	})
}

func TestUpdateBodyNullEqualsAbsent(t *testing.T) {
	var body UpdateBody
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","start_date":null}`), &body))

	require.NotNil(t, body.Title)
	assert.Equal(t, "New", *body.Title)
	assert.Nil(t, body.StartDate)
	assert.Nil(t, body.Message)
}

func TestResponseSerializesNullStartDate(t *testing.T) {
	a := &announcement.Announcement{
		ID:        "2b8f0f9e-6f0a-4f59-9f6d-3a2f6c1d4e5b",
		Title:     "Notice",
		Message:   "School closed",
		EndDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(NewResponse(a))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, a.ID, decoded["id"])
	assert.Nil(t, decoded["start_date"])
	assert.Equal(t, "2026-09-01T00:00:00Z", decoded["end_date"])
}
