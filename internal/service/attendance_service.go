package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/internal/timesheet"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

const dateLayout = "2006-01-02"

// StatsCache abstracts the daily statistics cache so the service can be
// tested without Redis.
type StatsCache interface {
	Get(ctx context.Context, date string) (*domain.DailyStats, bool)
	Set(ctx context.Context, date string, stats domain.DailyStats)
	Invalidate(ctx context.Context, date string)
}

// AttendanceService applies the attendance business rules on top of the
// record store: check-in classification, check-out hours computation,
// manual overrides, and daily aggregation.
type AttendanceService struct {
	staff      repository.StaffRepository
	records    repository.AttendanceRepository
	statsCache StatsCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AttendanceDependencies bundles collaborators for the service.
type AttendanceDependencies struct {
	StaffRepo      repository.StaffRepository
	AttendanceRepo repository.AttendanceRepository
	StatsCache     StatsCache
	Dispatcher     events.Dispatcher
	Logger         *zap.Logger
}

// NewAttendanceService constructs the service.
func NewAttendanceService(deps AttendanceDependencies) *AttendanceService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		staff:      deps.StaffRepo,
		records:    deps.AttendanceRepo,
		statsCache: deps.StatsCache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// ManualEntryInput describes an administrator-supplied attendance row.
type ManualEntryInput struct {
	StaffID string
	Date    time.Time
	TimeIn  *string
	TimeOut *string
	Status  domain.AttendanceStatus
	Notes   *string
}

// DailyAttendance pairs the records for a date with its statistics.
type DailyAttendance struct {
	Records []domain.AttendanceDetail
	Stats   domain.DailyStats
}

// CheckIn records an arrival for the given staff member and date. A
// repeated check-in for the same (staff, date) overwrites time-in and
// status on the existing row instead of creating a duplicate.
func (s *AttendanceService) CheckIn(ctx context.Context, staffID string, date time.Time, timeIn string) (*domain.AttendanceRecord, error) {
	if _, err := s.staff.GetByStaffID(ctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": staffID})
		}
		return nil, apperrors.MapError(err)
	}

	clock, err := timesheet.ParseClock(timeIn)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid time_in value", map[string]any{"time_in": timeIn})
	}
	status := timesheet.ClassifyArrival(clock)

	record, err := s.records.UpsertCheckIn(ctx, staffID, date, clock.String(), status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx, date)
	s.publish(ctx, events.Event{
		Type:    events.EventCheckInRecorded,
		StaffID: staffID,
		Date:    date.Format(dateLayout),
		Payload: events.CheckInPayload{TimeIn: clock.String(), Status: status},
	})
	return record, nil
}

// CheckOut records a departure and computes hours worked. It fails when
// no record with a time-in exists for the (staff, date) pair.
func (s *AttendanceService) CheckOut(ctx context.Context, staffID string, date time.Time, timeOut string) (*domain.AttendanceRecord, error) {
	clock, err := timesheet.ParseClock(timeOut)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid time_out value", map[string]any{"time_out": timeOut})
	}

	existing, err := s.records.GetByStaffAndDate(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewPreconditionFailed("no check-in record found for this date, please check in first", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if existing.TimeIn == nil {
		return nil, apperrors.NewPreconditionFailed("cannot check out without checking in first", nil)
	}

	hours := timesheet.ComputeHoursWorked(*existing.TimeIn, clock.String())
	if err := s.records.SetCheckOut(ctx, staffID, date, clock.String(), hours); err != nil {
		return nil, apperrors.MapError(err)
	}

	out := clock.String()
	existing.TimeOut = &out
	existing.HoursWorked = hours

	s.invalidateStats(ctx, date)
	s.publish(ctx, events.Event{
		Type:    events.EventCheckOutRecorded,
		StaffID: staffID,
		Date:    date.Format(dateLayout),
		Payload: events.CheckOutPayload{TimeOut: out, HoursWorked: hours},
	})
	return existing, nil
}

// CreateManualEntry upserts a full attendance row, last entry wins. This
// is the only path allowed to set absent, half_day, or excused.
func (s *AttendanceService) CreateManualEntry(ctx context.Context, actor *domain.Admin, input ManualEntryInput) (*domain.AttendanceRecord, error) {
	if !domain.ValidStatus(input.Status) {
		return nil, apperrors.NewValidationError("invalid status value", map[string]any{"status": input.Status})
	}
	if _, err := s.staff.GetByStaffID(ctx, input.StaffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff member", map[string]any{"staff_id": input.StaffID})
		}
		return nil, apperrors.MapError(err)
	}

	timeIn, err := normalizeOptionalClock(input.TimeIn, "time_in")
	if err != nil {
		return nil, err
	}
	timeOut, err := normalizeOptionalClock(input.TimeOut, "time_out")
	if err != nil {
		return nil, err
	}

	var hours float64
	if timeIn != nil && timeOut != nil {
		hours = timesheet.ComputeHoursWorked(*timeIn, *timeOut)
	}

	record := &domain.AttendanceRecord{
		StaffID:     input.StaffID,
		Date:        input.Date,
		TimeIn:      timeIn,
		TimeOut:     timeOut,
		Status:      input.Status,
		HoursWorked: hours,
		Notes:       input.Notes,
	}
	if err := s.records.UpsertManual(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx, input.Date)
	payload := events.ManualEntryPayload{
		Status:      record.Status,
		TimeIn:      record.TimeIn,
		TimeOut:     record.TimeOut,
		HoursWorked: record.HoursWorked,
	}
	if actor != nil {
		payload.AdminEmail = actor.Email
	}
	s.publish(ctx, events.Event{
		Type:    events.EventManualEntry,
		StaffID: input.StaffID,
		Date:    input.Date.Format(dateLayout),
		Payload: payload,
	})
	return record, nil
}

// BulkCheckIn applies the check-in rule to several staff members at once.
// Every id must reference existing staff; the upsert keeps the operation
// idempotent per (staff, date).
func (s *AttendanceService) BulkCheckIn(ctx context.Context, staffIDs []string, date time.Time, timeIn string) (int, error) {
	if len(staffIDs) == 0 {
		return 0, apperrors.NewValidationError("staff_ids must not be empty", nil)
	}
	count := 0
	for _, staffID := range staffIDs {
		if _, err := s.CheckIn(ctx, staffID, date, timeIn); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// GetDailyAttendance returns the records for a date together with its
// summary statistics, serving the stats from cache when fresh.
func (s *AttendanceService) GetDailyAttendance(ctx context.Context, date time.Time) (*DailyAttendance, error) {
	details, err := s.records.ListByDate(ctx, date)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	dateKey := date.Format(dateLayout)
	if s.statsCache != nil {
		if cached, ok := s.statsCache.Get(ctx, dateKey); ok {
			return &DailyAttendance{Records: details, Stats: *cached}, nil
		}
	}

	totalStaff, err := s.staff.Count(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	records := make([]domain.AttendanceRecord, 0, len(details))
	for _, det := range details {
		records = append(records, det.AttendanceRecord)
	}
	stats := timesheet.ComputeStats(totalStaff, records)

	if s.statsCache != nil {
		s.statsCache.Set(ctx, dateKey, stats)
	}
	return &DailyAttendance{Records: details, Stats: stats}, nil
}

// ListAll returns every attendance record with staff metadata.
func (s *AttendanceService) ListAll(ctx context.Context) ([]domain.AttendanceDetail, error) {
	details, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}

// ListRange returns records between two dates inclusive.
func (s *AttendanceService) ListRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceDetail, error) {
	if end.Before(start) {
		return nil, apperrors.NewValidationError("end_date must not be before start_date", nil)
	}
	details, err := s.records.ListRange(ctx, start, end)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return details, nil
}

func (s *AttendanceService) invalidateStats(ctx context.Context, date time.Time) {
	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx, date.Format(dateLayout))
	}
}

func (s *AttendanceService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func normalizeOptionalClock(val *string, field string) (*string, error) {
	if val == nil || *val == "" {
		return nil, nil
	}
	normalized, err := timesheet.Normalize(*val)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid "+field+" value", map[string]any{field: *val})
	}
	return &normalized, nil
}
