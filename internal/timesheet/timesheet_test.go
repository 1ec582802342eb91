package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{input: "00:00:00", want: 0},
		{input: "08:30:00", want: 8*3600 + 30*60},
		{input: "23:59:59", want: 23*3600 + 59*60 + 59},
		{input: "09:15", want: 9*3600 + 15*60},
		{input: "24:00:00", wantErr: true},
		{input: "08:61:00", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "1:2:3:4", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClockString(t *testing.T) {
	c, err := ParseClock("07:05:09")
	require.NoError(t, err)
	assert.Equal(t, "07:05:09", c.String())

	normalized, err := Normalize("09:15")
	require.NoError(t, err)
	assert.Equal(t, "09:15:00", normalized)
}

func TestComputeHoursWorked(t *testing.T) {
	tests := []struct {
		name    string
		timeIn  string
		timeOut string
		want    float64
	}{
		{name: "short shift no lunch", timeIn: "09:00:00", timeOut: "13:00:00", want: 4},
		{name: "exactly six hours no lunch", timeIn: "08:00:00", timeOut: "14:00:00", want: 6},
		{name: "standard day with lunch", timeIn: "08:00:00", timeOut: "17:30:00", want: 8.5},
		{name: "overnight shift", timeIn: "22:00:00", timeOut: "06:00:00", want: 7},
		{name: "lunch applied once on long shift", timeIn: "06:00:00", timeOut: "22:00:00", want: 15},
		{name: "missing time in", timeIn: "", timeOut: "17:00:00", want: 0},
		{name: "missing time out", timeIn: "08:00:00", timeOut: "", want: 0},
		{name: "both missing", timeIn: "", timeOut: "", want: 0},
		{name: "unparseable input treated as absent", timeIn: "garbage", timeOut: "17:00:00", want: 0},
		{name: "fractional rounding", timeIn: "09:00:00", timeOut: "13:20:00", want: 4.33},
		{name: "equal times", timeIn: "09:00:00", timeOut: "09:00:00", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComputeHoursWorked(tt.timeIn, tt.timeOut), 0.001)
		})
	}
}

func TestComputeHoursWorkedRoundsHalfUp(t *testing.T) {
	// 09:00:00 to 13:00:18 is 4.005 hours, which must round up to 4.01.
	assert.InDelta(t, 4.01, ComputeHoursWorked("09:00:00", "13:00:18"), 0.0001)
}

func TestClassifyArrival(t *testing.T) {
	tests := []struct {
		timeIn string
		want   domain.AttendanceStatus
	}{
		{timeIn: "07:45:00", want: domain.StatusPresent},
		{timeIn: "08:30:00", want: domain.StatusPresent},
		{timeIn: "08:30:01", want: domain.StatusLate},
		{timeIn: "13:00:00", want: domain.StatusLate},
	}
	for _, tt := range tests {
		t.Run(tt.timeIn, func(t *testing.T) {
			c, err := ParseClock(tt.timeIn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ClassifyArrival(c))
		})
	}
}
