package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
)

var pgconnUniqueViolation = pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

func dayKey(staffID string, date time.Time) string {
	return staffID + "|" + date.Format("2006-01-02")
}

type fakeStaffRepo struct {
	byStaffID map[string]*domain.StaffMember
	nextID    int64
}

func newFakeStaffRepo(staffIDs ...string) *fakeStaffRepo {
	repo := &fakeStaffRepo{byStaffID: make(map[string]*domain.StaffMember)}
	for _, id := range staffIDs {
		repo.nextID++
		repo.byStaffID[id] = &domain.StaffMember{ID: repo.nextID, StaffID: id}
	}
	return repo
}

func (r *fakeStaffRepo) Create(_ context.Context, staff *domain.StaffMember) error {
	r.nextID++
	staff.ID = r.nextID
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	r.byStaffID[staff.StaffID] = staff
	return nil
}

func (r *fakeStaffRepo) Update(_ context.Context, staff *domain.StaffMember) error {
	if _, ok := r.byStaffID[staff.StaffID]; !ok {
		return pgx.ErrNoRows
	}
	r.byStaffID[staff.StaffID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByStaffID(_ context.Context, staffID string) (*domain.StaffMember, error) {
	staff, ok := r.byStaffID[staffID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *staff
	return &copied, nil
}

func (r *fakeStaffRepo) List(_ context.Context, _ repository.StaffFilter) ([]domain.StaffMember, error) {
	result := make([]domain.StaffMember, 0, len(r.byStaffID))
	for _, staff := range r.byStaffID {
		result = append(result, *staff)
	}
	return result, nil
}

func (r *fakeStaffRepo) Count(_ context.Context) (int, error) {
	return len(r.byStaffID), nil
}

type fakeAttendanceRepo struct {
	records map[string]*domain.AttendanceRecord
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*domain.AttendanceRecord)}
}

func (r *fakeAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (*domain.AttendanceRecord, error) {
	rec, ok := r.records[dayKey(staffID, date)]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeAttendanceRepo) UpsertCheckIn(_ context.Context, staffID string, date time.Time, timeIn string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	key := dayKey(staffID, date)
	in := timeIn
	if rec, ok := r.records[key]; ok {
		rec.TimeIn = &in
		rec.Status = status
		rec.UpdatedAt = time.Now()
		copied := *rec
		return &copied, nil
	}
	r.nextID++
	rec := &domain.AttendanceRecord{
		ID:        r.nextID,
		StaffID:   staffID,
		Date:      date,
		TimeIn:    &in,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.records[key] = rec
	copied := *rec
	return &copied, nil
}

func (r *fakeAttendanceRepo) SetCheckOut(_ context.Context, staffID string, date time.Time, timeOut string, hoursWorked float64) error {
	rec, ok := r.records[dayKey(staffID, date)]
	if !ok {
		return pgx.ErrNoRows
	}
	out := timeOut
	rec.TimeOut = &out
	rec.HoursWorked = hoursWorked
	rec.UpdatedAt = time.Now()
	return nil
}

func (r *fakeAttendanceRepo) UpsertManual(_ context.Context, record *domain.AttendanceRecord) error {
	key := dayKey(record.StaffID, record.Date)
	if existing, ok := r.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		r.nextID++
		record.ID = r.nextID
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()
	copied := *record
	r.records[key] = &copied
	return nil
}

func (r *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]domain.AttendanceDetail, error) {
	var result []domain.AttendanceDetail
	for _, rec := range r.records {
		if rec.Date.Equal(date) {
			result = append(result, domain.AttendanceDetail{AttendanceRecord: *rec})
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListRange(_ context.Context, start, end time.Time) ([]domain.AttendanceDetail, error) {
	var result []domain.AttendanceDetail
	for _, rec := range r.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			result = append(result, domain.AttendanceDetail{AttendanceRecord: *rec})
		}
	}
	return result, nil
}

func (r *fakeAttendanceRepo) ListAll(_ context.Context) ([]domain.AttendanceDetail, error) {
	var result []domain.AttendanceDetail
	for _, rec := range r.records {
		result = append(result, domain.AttendanceDetail{AttendanceRecord: *rec})
	}
	return result, nil
}

type fakeStatsCache struct {
	data         map[string]domain.DailyStats
	invalidated  []string
	getRequested []string
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{data: make(map[string]domain.DailyStats)}
}

func (c *fakeStatsCache) Get(_ context.Context, date string) (*domain.DailyStats, bool) {
	c.getRequested = append(c.getRequested, date)
	stats, ok := c.data[date]
	if !ok {
		return nil, false
	}
	return &stats, true
}

func (c *fakeStatsCache) Set(_ context.Context, date string, stats domain.DailyStats) {
	c.data[date] = stats
}

func (c *fakeStatsCache) Invalidate(_ context.Context, date string) {
	delete(c.data, date)
	c.invalidated = append(c.invalidated, date)
}

type fakeDepartmentRepo struct {
	byID   map[int64]*domain.Department
	byName map[string]int64
	nextID int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{byID: make(map[int64]*domain.Department), byName: make(map[string]int64)}
}

func (r *fakeDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	if _, exists := r.byName[dept.Name]; exists {
		return &pgconnUniqueViolation
	}
	r.nextID++
	dept.ID = r.nextID
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	copied := *dept
	r.byID[dept.ID] = &copied
	r.byName[dept.Name] = dept.ID
	return nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	if _, ok := r.byID[dept.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *dept
	r.byID[dept.ID] = &copied
	return nil
}

func (r *fakeDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	dept, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *dept
	return &copied, nil
}

func (r *fakeDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	result := make([]domain.Department, 0, len(r.byID))
	for _, dept := range r.byID {
		result = append(result, *dept)
	}
	return result, nil
}

// ptr helpers shared across tests.
func strPtr(s string) *string { return &s }
