// Package timesheet holds the pure attendance arithmetic: worked-hours
// computation, arrival classification, and daily statistics.
package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spec-kit/attendance-service/internal/domain"
)

const (
	secondsPerDay = 24 * 60 * 60

	// lunchBreakThresholdHours is the raw duration beyond which one
	// unpaid lunch hour is deducted, applied once.
	lunchBreakThresholdHours = 6.0

	// LateThresholdClock is the fixed arrival cutoff; strictly later
	// arrivals are classified late.
	LateThresholdClock = "08:30:00"
)

// Clock is a time of day in seconds since midnight.
type Clock int

// ParseClock parses HH:MM:SS or HH:MM into a Clock.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid clock value %q", s)
		}
		nums[i] = n
	}
	if nums[0] > 23 || nums[1] > 59 || nums[2] > 59 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	return Clock(nums[0]*3600 + nums[1]*60 + nums[2]), nil
}

// String formats the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, int(c)/60%60, int(c)%60)
}

// Normalize re-renders a clock string into canonical HH:MM:SS form.
func Normalize(s string) (string, error) {
	c, err := ParseClock(s)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// ComputeHoursWorked returns the worked hours between two clock values,
// rounded half-up to two decimals. Either value may be empty, yielding 0.
// A time-out earlier than time-in is treated as the next day (overnight
// shift); raw durations over 6 hours lose exactly one unpaid lunch hour.
func ComputeHoursWorked(timeIn, timeOut string) float64 {
	if timeIn == "" || timeOut == "" {
		return 0
	}
	in, err := ParseClock(timeIn)
	if err != nil {
		return 0
	}
	out, err := ParseClock(timeOut)
	if err != nil {
		return 0
	}

	seconds := int(out) - int(in)
	if seconds < 0 {
		seconds += secondsPerDay
	}

	hours := float64(seconds) / 3600
	if hours > lunchBreakThresholdHours {
		hours -= 1
	}
	return math.Floor(hours*100+0.5) / 100
}

// ClassifyArrival returns late for arrivals strictly after the threshold,
// present otherwise.
func ClassifyArrival(timeIn Clock) domain.AttendanceStatus {
	threshold, _ := ParseClock(LateThresholdClock)
	if timeIn > threshold {
		return domain.StatusLate
	}
	return domain.StatusPresent
}
