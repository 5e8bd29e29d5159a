package idgen

import (
	"github.com/google/uuid"
)

const (
	PrefixTeam        = "team"
	PrefixAttendance  = "att"
	PrefixLeave       = "leave"
	PrefixWorkUpdate  = "wu"
	PrefixLearning    = "learn"
	PrefixAppointment = "apt"
	PrefixMeeting     = "meet"
	PrefixMessage     = "msg"
	PrefixChat        = "chat"
)

// New returns "<prefix>-<uuidv7>". v7 ids sort by creation time and never
// collide within the same millisecond.
func New(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}
