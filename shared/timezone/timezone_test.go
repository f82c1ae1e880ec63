package timezone_test

import (
	"testing"
	"time"

	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, loc)

	day := timezone.Day(in)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), day)
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "valid date",
			value: "2025-06-03",
			want:  time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong layout",
			value:   "03.06.2025",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseDay(tt.value)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, timezone.FormatDay(got))
		})
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NotEmpty(t, timezone.Format(testTime, "2006-01-02 15:04:05 MST"))
}
