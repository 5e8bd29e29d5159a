package meeting

import "context"

type MeetingService interface {
	// Upcoming returns meetings dated today or later that include the
	// acting user, soonest first.
	Upcoming(ctx context.Context) ([]Meeting, error)
	Schedule(ctx context.Context) (Schedule, error)
}
