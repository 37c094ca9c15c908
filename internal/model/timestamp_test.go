package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: `"2025-03-04T10:11:12Z"`,
			want:  time.Date(2025, 3, 4, 10, 11, 12, 0, time.UTC),
		},
		{
			name:  "zone-less date-time",
			input: `"2025-03-04T10:11:12"`,
			want:  time.Date(2025, 3, 4, 10, 11, 12, 0, time.UTC),
		},
		{
			name:  "zone-less with fraction",
			input: `"2025-03-04T10:11:12.123456"`,
			want:  time.Date(2025, 3, 4, 10, 11, 12, 123456000, time.UTC),
		},
		{
			name:  "date only",
			input: `"2025-03-04"`,
			want:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestampUnmarshal_Invalid(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestBookDecode_OptionalFieldsAbsent(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"titulo":"Foo","autor":"Bar","disponible":true}`), &b))

	assert.Equal(t, int64(7), b.ID)
	assert.Nil(t, b.PublicationYear)
	assert.Nil(t, b.CreatedAt)
	assert.Equal(t, "-", b.CreatedAt.DateString("-"))
}

func TestBookInputEncode_OmitsNilFields(t *testing.T) {
	title, author, year, available := "Foo", "Bar", 2020, false
	body, err := json.Marshal(BookInput{
		Title:           &title,
		Author:          &author,
		PublicationYear: &year,
		Available:       &available,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"titulo":"Foo","autor":"Bar","añoPublicacion":2020,"disponible":false}`, string(body))
}
