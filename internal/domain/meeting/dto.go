package meeting

// MeetingResponse decorates a meeting with its type label.
type MeetingResponse struct {
	Meeting
	TypeLabel string `json:"typeLabel"`
}

func NewMeetingResponse(m Meeting) MeetingResponse {
	return MeetingResponse{Meeting: m, TypeLabel: m.Type.Label()}
}

// Schedule splits the acting user's meetings around today.
type Schedule struct {
	Today    []MeetingResponse `json:"today"`
	Upcoming []MeetingResponse `json:"upcoming"`
	Past     []MeetingResponse `json:"past"`
}
