package leave

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType LeaveType `json:"leaveType"`
	FromDate  string    `json:"fromDate"`
	ToDate    string    `json:"toDate"`
	Reason    string    `json:"reason"`

	EmployeeID   *string    `json:"employeeId,omitempty"`
	EmployeeName *string    `json:"employeeName,omitempty"`
	Team         *string    `json:"team,omitempty"`
	Status       *Status    `json:"status,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.LeaveType.IsValid() {
		errs.Add("leaveType", "invalid leave type")
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs.Add("fromDate", "fromDate must be YYYY-MM-DD")
	}
	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs.Add("toDate", "toDate must be YYYY-MM-DD")
	}
	if fromOK && toOK && to.Before(from) {
		errs.Add("toDate", "toDate must not be before fromDate")
	}

	errs.Required("reason", r.Reason)

	if r.Status != nil && !r.Status.IsValid() {
		errs.Add("status", "invalid leave status")
	}

	return errs.Err()
}

func (r SubmitLeaveRequest) Build(id string, actor user.Identity, now time.Time) LeaveRequest {
	l := LeaveRequest{
		ID:           id,
		EmployeeID:   actor.ID,
		EmployeeName: actor.Name,
		Team:         actor.Team,
		LeaveType:    r.LeaveType,
		FromDate:     r.FromDate,
		ToDate:       r.ToDate,
		Reason:       r.Reason,
		Status:       StatusPending,
		CreatedAt:    now.UTC(),
	}

	if r.EmployeeID != nil {
		l.EmployeeID = *r.EmployeeID
	}
	if r.EmployeeName != nil {
		l.EmployeeName = *r.EmployeeName
	}
	if r.Team != nil {
		l.Team = *r.Team
	}
	if r.Status != nil {
		l.Status = *r.Status
	}
	if r.CreatedAt != nil {
		l.CreatedAt = *r.CreatedAt
	}
	return l
}

type UpdateStatusRequest struct {
	Status     Status  `json:"status"`
	ApprovedBy *string `json:"approvedBy,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if !r.Status.IsValid() {
		errs.Add("status", "status must be pending, approved or rejected")
	}
	return errs.Err()
}

type ListFilter struct {
	EmployeeID        string
	ExcludeEmployeeID string
	Status            Status
}

// BalanceEntry is the static allowance shown beside a leave type. A nil
// Days means unlimited.
type BalanceEntry struct {
	LeaveType LeaveType `json:"leaveType"`
	Label     string    `json:"label"`
	Days      *int      `json:"days"`
	Used      int       `json:"used"`
}
