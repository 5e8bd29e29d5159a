package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy *string) (LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
}
