package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/timesheet"
)

// AttendanceRepository is the durable store for attendance rows. All
// writes are keyed by (staff_id, attendance_date); the unique constraint
// on that pair is the only concurrency guard, later write wins.
type AttendanceRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*domain.AttendanceRecord, error)
	UpsertCheckIn(ctx context.Context, staffID string, date time.Time, timeIn string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error)
	SetCheckOut(ctx context.Context, staffID string, date time.Time, timeOut string, hoursWorked float64) error
	UpsertManual(ctx context.Context, record *domain.AttendanceRecord) error
	ListByDate(ctx context.Context, date time.Time) ([]domain.AttendanceDetail, error)
	ListRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceDetail, error)
	ListAll(ctx context.Context) ([]domain.AttendanceDetail, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

// clockToPg converts an optional HH:MM:SS string to a TIME parameter.
func clockToPg(val *string) pgtype.Time {
	if val == nil || *val == "" {
		return pgtype.Time{}
	}
	c, err := timesheet.ParseClock(*val)
	if err != nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: int64(c) * 1_000_000, Valid: true}
}

// pgToClock converts a TIME column back to an HH:MM:SS string.
func pgToClock(t pgtype.Time) *string {
	if !t.Valid {
		return nil
	}
	s := timesheet.Clock(t.Microseconds / 1_000_000).String()
	return &s
}

func scanRecord(row pgx.Row) (*domain.AttendanceRecord, error) {
	var (
		rec     domain.AttendanceRecord
		timeIn  pgtype.Time
		timeOut pgtype.Time
	)
	if err := row.Scan(
		&rec.ID,
		&rec.StaffID,
		&rec.Date,
		&timeIn,
		&timeOut,
		&rec.Status,
		&rec.HoursWorked,
		&rec.Notes,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rec.TimeIn = pgToClock(timeIn)
	rec.TimeOut = pgToClock(timeOut)
	return &rec, nil
}

const recordColumns = `
        ar.id, ar.staff_id, ar.attendance_date, ar.time_in, ar.time_out,
        ar.status, ar.hours_worked, ar.notes, ar.created_at, ar.updated_at`

func (r *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*domain.AttendanceRecord, error) {
	query := `
        SELECT ` + recordColumns + `
        FROM attendance_records ar
        WHERE ar.staff_id=$1 AND ar.attendance_date=$2`
	return scanRecord(r.pool.QueryRow(ctx, query, staffID, date))
}

func (r *attendanceRepository) UpsertCheckIn(ctx context.Context, staffID string, date time.Time, timeIn string, status domain.AttendanceStatus) (*domain.AttendanceRecord, error) {
	// Re-check-in overwrites only time_in and status; an existing
	// time_out, hours, and notes stay untouched.
	const query = `
        INSERT INTO attendance_records (staff_id, attendance_date, time_in, status)
        VALUES ($1,$2,$3,$4)
        ON CONFLICT (staff_id, attendance_date) DO UPDATE
        SET time_in = EXCLUDED.time_in,
            status = EXCLUDED.status,
            updated_at = NOW()
        RETURNING id, staff_id, attendance_date, time_in, time_out, status, hours_worked, notes, created_at, updated_at`
	in := timeIn
	return scanRecord(r.pool.QueryRow(ctx, query, staffID, date, clockToPg(&in), status))
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, staffID string, date time.Time, timeOut string, hoursWorked float64) error {
	const query = `
        UPDATE attendance_records
        SET time_out=$1, hours_worked=$2, updated_at=NOW()
        WHERE staff_id=$3 AND attendance_date=$4`
	out := &timeOut
	cmd, err := r.pool.Exec(ctx, query, clockToPg(out), hoursWorked, staffID, date)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *attendanceRepository) UpsertManual(ctx context.Context, record *domain.AttendanceRecord) error {
	const query = `
        INSERT INTO attendance_records (staff_id, attendance_date, time_in, time_out, status, hours_worked, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (staff_id, attendance_date) DO UPDATE
        SET time_in = EXCLUDED.time_in,
            time_out = EXCLUDED.time_out,
            status = EXCLUDED.status,
            hours_worked = EXCLUDED.hours_worked,
            notes = EXCLUDED.notes,
            updated_at = NOW()
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		record.StaffID,
		record.Date,
		clockToPg(record.TimeIn),
		clockToPg(record.TimeOut),
		record.Status,
		record.HoursWorked,
		record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

const detailColumns = recordColumns + `,
        s.first_name, s.last_name, s.email, s.position, d.name`

const detailJoins = `
        FROM attendance_records ar
        JOIN staff s ON ar.staff_id = s.staff_id
        LEFT JOIN departments d ON s.department_id = d.id`

func scanDetail(rows pgx.Rows) (*domain.AttendanceDetail, error) {
	var (
		det     domain.AttendanceDetail
		timeIn  pgtype.Time
		timeOut pgtype.Time
	)
	if err := rows.Scan(
		&det.ID,
		&det.StaffID,
		&det.Date,
		&timeIn,
		&timeOut,
		&det.Status,
		&det.HoursWorked,
		&det.Notes,
		&det.CreatedAt,
		&det.UpdatedAt,
		&det.FirstName,
		&det.LastName,
		&det.Email,
		&det.Position,
		&det.DepartmentName,
	); err != nil {
		return nil, err
	}
	det.TimeIn = pgToClock(timeIn)
	det.TimeOut = pgToClock(timeOut)
	return &det, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.AttendanceDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + `
        WHERE ar.attendance_date=$1
        ORDER BY s.first_name, s.last_name`
	return r.queryDetails(ctx, query, date)
}

func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.AttendanceDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + `
        WHERE ar.attendance_date BETWEEN $1 AND $2
        ORDER BY ar.attendance_date DESC, s.first_name, s.last_name`
	return r.queryDetails(ctx, query, start, end)
}

func (r *attendanceRepository) ListAll(ctx context.Context) ([]domain.AttendanceDetail, error) {
	query := `SELECT ` + detailColumns + detailJoins + `
        ORDER BY ar.attendance_date DESC, s.first_name, s.last_name`
	return r.queryDetails(ctx, query)
}

func (r *attendanceRepository) queryDetails(ctx context.Context, query string, args ...any) ([]domain.AttendanceDetail, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AttendanceDetail
	for rows.Next() {
		det, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *det)
	}
	return result, rows.Err()
}
