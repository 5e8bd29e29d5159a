package snapshot

import (
	"context"

	"github.com/grofast/portal-backend-go/internal/domain/meeting"
)

type meetingRepositoryImpl struct {
	records collection[meeting.Meeting]
}

func NewMeetingRepository(store *Store) meeting.MeetingRepository {
	return &meetingRepositoryImpl{records: collection[meeting.Meeting]{
		store: store,
		slot:  func(d *Snapshot) *[]meeting.Meeting { return &d.Meetings },
		id:    func(m meeting.Meeting) string { return m.ID },
	}}
}

// ListByAttendee implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) ListByAttendee(ctx context.Context, userID string) ([]meeting.Meeting, error) {
	return r.records.filter(func(m meeting.Meeting) bool { return m.HasAttendee(userID) }), nil
}

// List implements meeting.MeetingRepository.
func (r *meetingRepositoryImpl) List(ctx context.Context) ([]meeting.Meeting, error) {
	return r.records.filter(nil), nil
}
