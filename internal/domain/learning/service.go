package learning

import "context"

type LearningService interface {
	SubmitLearning(ctx context.Context, req SubmitLearningRequest) (Entry, error)
	ListMine(ctx context.Context) ([]Entry, error)
	Streak(ctx context.Context, employeeID string) (int, error)
	Summary(ctx context.Context) (Summary, error)
}
