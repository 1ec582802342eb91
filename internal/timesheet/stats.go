package timesheet

import (
	"math"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// ComputeStats tallies per-status counts over the records for one date.
// Only rows actually present are counted; staff without a record for the
// date contribute to TotalStaff but not to AbsentCount. The attendance
// rate is the integer percentage of present, late, and half-day staff out
// of the total, 0 when there is no staff at all.
func ComputeStats(totalStaff int, records []domain.AttendanceRecord) domain.DailyStats {
	stats := domain.DailyStats{TotalStaff: totalStaff}
	for _, rec := range records {
		switch rec.Status {
		case domain.StatusPresent:
			stats.PresentCount++
		case domain.StatusLate:
			stats.LateCount++
		case domain.StatusHalfDay:
			stats.HalfDayCount++
		case domain.StatusAbsent:
			stats.AbsentCount++
		case domain.StatusExcused:
			stats.ExcusedCount++
		}
	}

	if totalStaff > 0 {
		attended := stats.PresentCount + stats.LateCount + stats.HalfDayCount
		stats.AttendanceRate = int(math.Round(float64(attended) / float64(totalStaff) * 100))
	}
	return stats
}
