package workupdate

import "context"

type WorkUpdateRepository interface {
	Create(ctx context.Context, u WorkUpdate) (WorkUpdate, error)
	Review(ctx context.Context, id string, status ReviewStatus, comment *string) (WorkUpdate, error)
	List(ctx context.Context, filter ListFilter) ([]WorkUpdate, error)
}
