package binding

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{
			name:  "full_form",
			input: "14:23:55",
			want:  TimeOfDay{Hour: 14, Minute: 23, Second: 55},
		},
		{
			name:  "short_form",
			input: "09:15",
			want:  TimeOfDay{Hour: 9, Minute: 15},
		},
		{
			name:    "out_of_range_hour",
			input:   "25:00:00",
			wantErr: true,
		},
		{
			name:    "not_a_time",
			input:   "afternoon",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeOfDayMarshalJSON(t *testing.T) {
	data, err := json.Marshal(TimeOfDay{Hour: 3, Minute: 7, Second: 9})
	require.NoError(t, err)
	assert.Equal(t, `"03:07:09"`, string(data))
}

func TestParseBindDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "go_duration_string",
			input: "1h30m",
			want:  90 * time.Minute,
		},
		{
			name:  "bare_seconds",
			input: "300",
			want:  5 * time.Minute,
		},
		{
			name:  "fractional_seconds",
			input: "1.5",
			want:  1500 * time.Millisecond,
		},
		{
			name:    "garbage",
			input:   "soon",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBindDuration(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Duration(tc.want), got)
		})
	}
}

func TestDurationMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(data))
}
