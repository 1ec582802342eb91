package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		date, err := ParseDate("2026-03-02", "date")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("rejected inputs", func(t *testing.T) {
		for _, bad := range []string{"", "02-03-2026", "2026/03/02", "2026-13-01", "yesterday"} {
			_, err := ParseDate(bad, "date")
			assert.Error(t, err, "input %q", bad)
		}
	})
}

func TestCheckInRequestValidate(t *testing.T) {
	valid := CheckInRequest{StaffID: "EMP001", TimeIn: "08:00", Date: "2026-03-02"}

	t.Run("valid", func(t *testing.T) {
		date, err := valid.Validate()
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", date.Format("2006-01-02"))
	})

	t.Run("missing fields", func(t *testing.T) {
		cases := map[string]CheckInRequest{
			"staff_id": {TimeIn: "08:00", Date: "2026-03-02"},
			"time_in":  {StaffID: "EMP001", Date: "2026-03-02"},
			"date":     {StaffID: "EMP001", TimeIn: "08:00"},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := req.Validate()
				assert.Error(t, err)
			})
		}
	})
}

func TestManualEntryRequestValidate(t *testing.T) {
	t.Run("valid without times", func(t *testing.T) {
		req := ManualEntryRequest{StaffID: "EMP001", AttendanceDate: "2026-03-02", Status: "absent"}
		_, err := req.Validate()
		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := ManualEntryRequest{StaffID: "EMP001", AttendanceDate: "2026-03-02", Status: "vacation"}
		_, err := req.Validate()
		assert.Error(t, err)
	})

	t.Run("missing status", func(t *testing.T) {
		req := ManualEntryRequest{StaffID: "EMP001", AttendanceDate: "2026-03-02"}
		_, err := req.Validate()
		assert.Error(t, err)
	})
}

func TestBulkCheckInRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := BulkCheckInRequest{StaffIDs: []string{"EMP001", "EMP002"}, TimeIn: "08:00", Date: "2026-03-02"}
		_, err := req.Validate()
		require.NoError(t, err)
	})

	t.Run("empty id list", func(t *testing.T) {
		req := BulkCheckInRequest{TimeIn: "08:00", Date: "2026-03-02"}
		_, err := req.Validate()
		assert.Error(t, err)
	})
}
