package attendance

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

var Statuses = []Status{StatusPending, StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}

func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Attendance is one day's record for one employee.
type Attendance struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	EmployeeID string     `json:"employeeId"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	Status     Status     `json:"status"`
	PhotoURL   *string    `json:"photo"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Address    *string    `json:"address"`
	Device     *string    `json:"device"`
}

func (a Attendance) IsPresent() bool {
	return a.Status == StatusPresent
}
