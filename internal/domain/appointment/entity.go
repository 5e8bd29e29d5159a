package appointment

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Appointment is a one-on-one booking request with a lead or manager.
type Appointment struct {
	ID                string    `json:"id"`
	RequestedBy       string    `json:"requestedBy"`
	RequestedByName   string    `json:"requestedByName"`
	RequestedWith     string    `json:"requestedWith"`
	RequestedWithName string    `json:"requestedWithName"`
	RequestedWithRole string    `json:"requestedWithRole"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Agenda            string    `json:"agenda"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Contact is a person that can be booked.
type Contact struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	RoleLabel string `json:"roleLabel"`
}

// TimeSlots are the bookable start times.
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "14:00", "14:30", "15:00", "15:30", "16:00",
	"16:30", "17:00", "17:30",
}
