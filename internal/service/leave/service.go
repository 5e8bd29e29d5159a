package leave

import (
	"context"
	"fmt"

	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

// allowances is the yearly day budget per type. Missing types are unlimited.
var allowances = map[leave.LeaveType]int{
	leave.LeaveTypeCasual:    12,
	leave.LeaveTypeSick:      8,
	leave.LeaveTypePaid:      15,
	leave.LeaveTypeEmergency: 5,
	leave.LeaveTypeHalfDay:   10,
}

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	notifier webhook.Notifier
	now      clock.Clock
}

func NewLeaveService(repo leave.LeaveRequestRepository, notifier webhook.Notifier, now clock.Clock) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: repo,
		notifier:               notifier,
		now:                    now,
	}
}

// SubmitLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, req.Build(idgen.New(idgen.PrefixLeave), identity, s.now()))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to save leave request: %w", err)
	}

	s.notifier.Notify(ctx, webhook.EndpointLeaveRequest, created)
	return created, nil
}

// UpdateLeaveStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, id string, status leave.Status, approvedBy *string) (leave.LeaveRequest, error) {
	if _, err := user.FromContext(ctx); err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := s.LeaveRequestRepository.UpdateStatus(ctx, id, status, approvedBy)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.notifier.Notify(ctx, webhook.EndpointLeaveStatusUpdate, updated)
	return updated, nil
}

// ListMine implements leave.LeaveService. An empty status lists all.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, status leave.Status) ([]leave.LeaveRequest, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.LeaveRequestRepository.List(ctx, leave.ListFilter{EmployeeID: identity.ID, Status: status})
}

// PendingApprovals implements leave.LeaveService.
func (s *LeaveServiceImpl) PendingApprovals(ctx context.Context) ([]leave.LeaveRequest, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.LeaveRequestRepository.List(ctx, leave.ListFilter{ExcludeEmployeeID: identity.ID, Status: leave.StatusPending})
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context) ([]leave.BalanceEntry, error) {
	approved, err := s.ListMine(ctx, leave.StatusApproved)
	if err != nil {
		return nil, err
	}

	used := make(map[leave.LeaveType]int)
	for _, r := range approved {
		used[r.LeaveType]++
	}

	out := make([]leave.BalanceEntry, 0, len(leave.LeaveTypes))
	for _, t := range leave.LeaveTypes {
		entry := leave.BalanceEntry{LeaveType: t, Label: t.Label(), Used: used[t]}
		if days, ok := allowances[t]; ok {
			entry.Days = &days
		}
		out = append(out, entry)
	}
	return out, nil
}
