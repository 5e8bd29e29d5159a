package leave

import "context"

type LeaveService interface {
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)
	// UpdateLeaveStatus merges status and approver into the request. It
	// performs no transition or authority checks.
	UpdateLeaveStatus(ctx context.Context, id string, status Status, approvedBy *string) (LeaveRequest, error)
	ListMine(ctx context.Context, status Status) ([]LeaveRequest, error)
	PendingApprovals(ctx context.Context) ([]LeaveRequest, error)
	Balance(ctx context.Context) ([]BalanceEntry, error)
}
