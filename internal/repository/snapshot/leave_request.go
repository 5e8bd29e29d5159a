package snapshot

import (
	"context"
	"errors"

	"github.com/grofast/portal-backend-go/internal/domain/leave"
)

type leaveRequestRepositoryImpl struct {
	records collection[leave.LeaveRequest]
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{records: collection[leave.LeaveRequest]{
		store: store,
		slot:  func(d *Snapshot) *[]leave.LeaveRequest { return &d.LeaveRequests },
		id:    func(l leave.LeaveRequest) string { return l.ID },
	}}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	if err := r.records.insert(ctx, request); err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	l, err := r.records.get(id)
	if errors.Is(err, ErrRecordNotFound) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return l, err
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy *string) (leave.LeaveRequest, error) {
	l, err := r.records.replace(ctx, id, func(l leave.LeaveRequest) leave.LeaveRequest {
		l.Status = status
		l.ApprovedBy = approvedBy
		return l
	})
	if errors.Is(err, ErrRecordNotFound) {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return l, err
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	return r.records.filter(func(l leave.LeaveRequest) bool {
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			return false
		}
		if filter.ExcludeEmployeeID != "" && l.EmployeeID == filter.ExcludeEmployeeID {
			return false
		}
		if filter.Status != "" && l.Status != filter.Status {
			return false
		}
		return true
	}), nil
}
