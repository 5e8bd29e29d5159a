package learning

import (
	"context"
	"fmt"
	"math"

	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

type LearningServiceImpl struct {
	learning.LearningRepository
	notifier webhook.Notifier
	now      clock.Clock
}

func NewLearningService(repo learning.LearningRepository, notifier webhook.Notifier, now clock.Clock) learning.LearningService {
	return &LearningServiceImpl{
		LearningRepository: repo,
		notifier:           notifier,
		now:                now,
	}
}

// SubmitLearning implements learning.LearningService.
func (s *LearningServiceImpl) SubmitLearning(ctx context.Context, req learning.SubmitLearningRequest) (learning.Entry, error) {
	if err := req.Validate(); err != nil {
		return learning.Entry{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return learning.Entry{}, err
	}

	created, err := s.LearningRepository.Create(ctx, req.Build(idgen.New(idgen.PrefixLearning), identity, s.now()))
	if err != nil {
		return learning.Entry{}, fmt.Errorf("failed to save learning entry: %w", err)
	}

	s.notifier.Notify(ctx, webhook.EndpointLearningProgress, created)
	return created, nil
}

// ListMine implements learning.LearningService.
func (s *LearningServiceImpl) ListMine(ctx context.Context) ([]learning.Entry, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.LearningRepository.ListByEmployee(ctx, identity.ID)
}

// Streak implements learning.LearningService.
func (s *LearningServiceImpl) Streak(ctx context.Context, employeeID string) (int, error) {
	entries, err := s.LearningRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return 0, err
	}
	return learning.Streak(entries, s.now()), nil
}

// Summary implements learning.LearningService.
func (s *LearningServiceImpl) Summary(ctx context.Context) (learning.Summary, error) {
	entries, err := s.ListMine(ctx)
	if err != nil {
		return learning.Summary{}, err
	}

	summary := learning.Summary{
		Streak:        learning.Streak(entries, s.now()),
		TotalSessions: len(entries),
		Entries:       entries,
	}
	confidence := 0
	for _, e := range entries {
		summary.TotalHours += learning.Hours(e.TimeSpent)
		confidence += e.Confidence
	}
	summary.TotalHours = math.Round(summary.TotalHours*10) / 10
	if len(entries) > 0 {
		summary.AvgConfidence = math.Round(float64(confidence)/float64(len(entries))*10) / 10
	}
	return summary, nil
}
