package attendance

import "context"

type AttendanceService interface {
	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) (Attendance, error)
	CheckOut(ctx context.Context, id string) (Attendance, error)
	GetToday(ctx context.Context) (TodayResponse, error)
	ListMine(ctx context.Context) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
}
