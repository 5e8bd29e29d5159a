package attendance

import (
	"context"
	"fmt"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	notifier webhook.Notifier
	now      clock.Clock
}

func NewAttendanceService(repo attendance.AttendanceRepository, notifier webhook.Notifier, now clock.Clock) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		notifier:             notifier,
		now:                  now,
	}
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return attendance.Attendance{}, err
	}

	record := req.Build(idgen.New(idgen.PrefixAttendance), identity.ID, s.now())
	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.notifier.Notify(ctx, webhook.EndpointAttendance, created)
	return created, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, id string) (attendance.Attendance, error) {
	if _, err := user.FromContext(ctx); err != nil {
		return attendance.Attendance{}, err
	}
	return s.AttendanceRepository.SetCheckOut(ctx, id, s.now().UTC())
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := s.now.Today()
	records, err := s.AttendanceRepository.ListByEmployeeAndDate(ctx, identity.ID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	resp := attendance.TodayResponse{Date: today, Records: records}
	for _, r := range records {
		if r.IsPresent() {
			resp.Marked = true
			break
		}
	}
	return resp, nil
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context) ([]attendance.Attendance, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.AttendanceRepository.List(ctx, attendance.ListFilter{EmployeeID: identity.ID})
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.List(ctx, filter)
}
