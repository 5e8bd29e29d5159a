package workupdate

import "context"

type WorkUpdateService interface {
	SubmitWorkUpdate(ctx context.Context, req SubmitWorkUpdateRequest) (WorkUpdate, error)
	ReviewWorkUpdate(ctx context.Context, id string, status ReviewStatus, comment *string) (WorkUpdate, error)
	GetToday(ctx context.Context) (*WorkUpdate, error)
	ListMine(ctx context.Context) ([]WorkUpdate, error)
	// PendingReviews lists other people's pending updates. Non-reviewers get
	// an empty list.
	PendingReviews(ctx context.Context) ([]WorkUpdate, error)
}
