package meeting

import (
	"context"
	"sort"

	"github.com/grofast/portal-backend-go/internal/domain/meeting"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
)

type MeetingServiceImpl struct {
	meeting.MeetingRepository
	now clock.Clock
}

func NewMeetingService(repo meeting.MeetingRepository, now clock.Clock) meeting.MeetingService {
	return &MeetingServiceImpl{MeetingRepository: repo, now: now}
}

func before(a, b meeting.Meeting) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time < b.Time
}

func (s *MeetingServiceImpl) mine(ctx context.Context) ([]meeting.Meeting, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	meetings, err := s.MeetingRepository.ListByAttendee(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(meetings, func(i, j int) bool { return before(meetings[i], meetings[j]) })
	return meetings, nil
}

// Upcoming implements meeting.MeetingService.
func (s *MeetingServiceImpl) Upcoming(ctx context.Context) ([]meeting.Meeting, error) {
	meetings, err := s.mine(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now.Today()
	out := []meeting.Meeting{}
	for _, m := range meetings {
		if m.Date >= today {
			out = append(out, m)
		}
	}
	return out, nil
}

// Schedule implements meeting.MeetingService. Past meetings are listed
// most recent first.
func (s *MeetingServiceImpl) Schedule(ctx context.Context) (meeting.Schedule, error) {
	meetings, err := s.mine(ctx)
	if err != nil {
		return meeting.Schedule{}, err
	}

	today := s.now.Today()
	sched := meeting.Schedule{
		Today:    []meeting.MeetingResponse{},
		Upcoming: []meeting.MeetingResponse{},
		Past:     []meeting.MeetingResponse{},
	}
	for _, m := range meetings {
		r := meeting.NewMeetingResponse(m)
		switch {
		case m.Date == today:
			sched.Today = append(sched.Today, r)
		case m.Date > today:
			sched.Upcoming = append(sched.Upcoming, r)
		default:
			sched.Past = append([]meeting.MeetingResponse{r}, sched.Past...)
		}
	}
	return sched, nil
}
