package meeting

import "context"

type MeetingRepository interface {
	ListByAttendee(ctx context.Context, userID string) ([]Meeting, error)
	List(ctx context.Context) ([]Meeting, error)
}
