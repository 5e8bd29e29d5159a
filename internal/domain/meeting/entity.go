package meeting

type Type string

const (
	TypeDaily  Type = "daily"
	TypeWeekly Type = "weekly"
	TypeSenior Type = "senior"
	TypeMD     Type = "md"
)

var typeLabels = map[Type]string{
	TypeDaily:  "Daily Standup",
	TypeWeekly: "Weekly Review",
	TypeSenior: "Senior Review",
	TypeMD:     "MD Review",
}

func (t Type) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return "Meeting"
}

// Meeting is a scheduled recurring or one-off session.
type Meeting struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Type      Type     `json:"type"`
	TeamID    string   `json:"teamId"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Duration  int      `json:"duration"`
	Attendees []string `json:"attendees"`
	Status    string   `json:"status"`
}

func (m Meeting) HasAttendee(userID string) bool {
	for _, a := range m.Attendees {
		if a == userID {
			return true
		}
	}
	return false
}
