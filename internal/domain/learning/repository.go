package learning

import "context"

type LearningRepository interface {
	Create(ctx context.Context, e Entry) (Entry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Entry, error)
	List(ctx context.Context) ([]Entry, error)
}
