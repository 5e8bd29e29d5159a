package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, a Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	SetCheckOut(ctx context.Context, id string, at time.Time) (Attendance, error)
	ListByEmployeeAndDate(ctx context.Context, employeeID, date string) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
