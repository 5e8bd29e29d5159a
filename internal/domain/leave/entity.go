package leave

import "time"

type LeaveType string

const (
	LeaveTypeCasual    LeaveType = "casual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePaid      LeaveType = "paid"
	LeaveTypeWFH       LeaveType = "wfh"
	LeaveTypeEmergency LeaveType = "emergency"
	LeaveTypeHalfDay   LeaveType = "half_day"
)

var LeaveTypes = []LeaveType{
	LeaveTypeCasual, LeaveTypeSick, LeaveTypePaid, LeaveTypeWFH, LeaveTypeEmergency, LeaveTypeHalfDay,
}

var leaveTypeLabels = map[LeaveType]string{
	LeaveTypeCasual:    "Casual Leave",
	LeaveTypeSick:      "Sick Leave",
	LeaveTypePaid:      "Paid Leave",
	LeaveTypeWFH:       "Work From Home",
	LeaveTypeEmergency: "Emergency Leave",
	LeaveTypeHalfDay:   "Half Day",
}

func (t LeaveType) Label() string {
	if l, ok := leaveTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

func (t LeaveType) IsValid() bool {
	_, ok := leaveTypeLabels[t]
	return ok
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// LeaveRequest is an employee's request for time off.
type LeaveRequest struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Team         string    `json:"team"`
	LeaveType    LeaveType `json:"leaveType"`
	FromDate     string    `json:"fromDate"`
	ToDate       string    `json:"toDate"`
	Reason       string    `json:"reason"`
	Status       Status    `json:"status"`
	ApprovedBy   *string   `json:"approvedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}
