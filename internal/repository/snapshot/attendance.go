package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	records collection[attendance.Attendance]
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{records: collection[attendance.Attendance]{
		store: store,
		slot:  func(d *Snapshot) *[]attendance.Attendance { return &d.Attendance },
		id:    func(a attendance.Attendance) string { return a.ID },
	}}
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	if err := r.records.insert(ctx, a); err != nil {
		return attendance.Attendance{}, err
	}
	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, err := r.records.get(id)
	if errors.Is(err, ErrRecordNotFound) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, err
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, at time.Time) (attendance.Attendance, error) {
	a, err := r.records.replace(ctx, id, func(a attendance.Attendance) attendance.Attendance {
		a.CheckOut = &at
		return a
	})
	if errors.Is(err, ErrRecordNotFound) {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, err
}

// ListByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]attendance.Attendance, error) {
	return r.records.filter(func(a attendance.Attendance) bool {
		return a.EmployeeID == employeeID && a.Date == date
	}), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return r.records.filter(func(a attendance.Attendance) bool {
		if filter.EmployeeID != "" && a.EmployeeID != filter.EmployeeID {
			return false
		}
		if filter.FromDate != "" && a.Date < filter.FromDate {
			return false
		}
		if filter.ToDate != "" && a.Date > filter.ToDate {
			return false
		}
		return true
	}), nil
}
