package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func recordsWithStatuses(statuses ...domain.AttendanceStatus) []domain.AttendanceRecord {
	records := make([]domain.AttendanceRecord, 0, len(statuses))
	for _, s := range statuses {
		records = append(records, domain.AttendanceRecord{Status: s})
	}
	return records
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name       string
		totalStaff int
		records    []domain.AttendanceRecord
		want       domain.DailyStats
	}{
		{
			name:       "rate rounds to nearest percent",
			totalStaff: 5,
			records: recordsWithStatuses(
				domain.StatusPresent, domain.StatusPresent, domain.StatusLate,
			),
			want: domain.DailyStats{
				TotalStaff:     5,
				PresentCount:   2,
				LateCount:      1,
				AttendanceRate: 60,
			},
		},
		{
			name:       "zero staff avoids division by zero",
			totalStaff: 0,
			records:    nil,
			want:       domain.DailyStats{},
		},
		{
			name:       "half day counts toward rate, absent and excused do not",
			totalStaff: 4,
			records: recordsWithStatuses(
				domain.StatusPresent, domain.StatusHalfDay,
				domain.StatusAbsent, domain.StatusExcused,
			),
			want: domain.DailyStats{
				TotalStaff:     4,
				PresentCount:   1,
				HalfDayCount:   1,
				AbsentCount:    1,
				ExcusedCount:   1,
				AttendanceRate: 50,
			},
		},
		{
			name:       "staff without records are not counted absent",
			totalStaff: 10,
			records:    recordsWithStatuses(domain.StatusPresent),
			want: domain.DailyStats{
				TotalStaff:     10,
				PresentCount:   1,
				AttendanceRate: 10,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.totalStaff, tt.records))
		})
	}
}

func TestComputeStatsIsPure(t *testing.T) {
	records := recordsWithStatuses(domain.StatusPresent, domain.StatusLate)
	first := ComputeStats(3, records)
	second := ComputeStats(3, records)
	assert.Equal(t, first, second)
	assert.Equal(t, domain.StatusPresent, records[0].Status)
}
