package workupdate

import (
	"context"
	"fmt"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

type WorkUpdateServiceImpl struct {
	workupdate.WorkUpdateRepository
	notifier webhook.Notifier
	now      clock.Clock
}

func NewWorkUpdateService(repo workupdate.WorkUpdateRepository, notifier webhook.Notifier, now clock.Clock) workupdate.WorkUpdateService {
	return &WorkUpdateServiceImpl{
		WorkUpdateRepository: repo,
		notifier:             notifier,
		now:                  now,
	}
}

// SubmitWorkUpdate implements workupdate.WorkUpdateService.
func (s *WorkUpdateServiceImpl) SubmitWorkUpdate(ctx context.Context, req workupdate.SubmitWorkUpdateRequest) (workupdate.WorkUpdate, error) {
	if err := req.Validate(); err != nil {
		return workupdate.WorkUpdate{}, err
	}
	identity, err := user.FromContext(ctx)
	if err != nil {
		return workupdate.WorkUpdate{}, err
	}

	created, err := s.WorkUpdateRepository.Create(ctx, req.Build(idgen.New(idgen.PrefixWorkUpdate), identity, s.now()))
	if err != nil {
		return workupdate.WorkUpdate{}, fmt.Errorf("failed to save work update: %w", err)
	}

	s.notifier.Notify(ctx, webhook.EndpointWorkUpdate, created)
	return created, nil
}

// ReviewWorkUpdate implements workupdate.WorkUpdateService.
func (s *WorkUpdateServiceImpl) ReviewWorkUpdate(ctx context.Context, id string, status workupdate.ReviewStatus, comment *string) (workupdate.WorkUpdate, error) {
	if _, err := user.FromContext(ctx); err != nil {
		return workupdate.WorkUpdate{}, err
	}
	return s.WorkUpdateRepository.Review(ctx, id, status, comment)
}

// GetToday implements workupdate.WorkUpdateService. It returns nil when
// nothing was submitted today.
func (s *WorkUpdateServiceImpl) GetToday(ctx context.Context) (*workupdate.WorkUpdate, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	updates, err := s.WorkUpdateRepository.List(ctx, workupdate.ListFilter{EmployeeID: identity.ID, Date: s.now.Today()})
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return nil, nil
	}
	latest := updates[len(updates)-1]
	return &latest, nil
}

// ListMine implements workupdate.WorkUpdateService.
func (s *WorkUpdateServiceImpl) ListMine(ctx context.Context) ([]workupdate.WorkUpdate, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.WorkUpdateRepository.List(ctx, workupdate.ListFilter{EmployeeID: identity.ID})
}

// PendingReviews implements workupdate.WorkUpdateService.
func (s *WorkUpdateServiceImpl) PendingReviews(ctx context.Context) ([]workupdate.WorkUpdate, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !identity.IsReviewer() {
		return []workupdate.WorkUpdate{}, nil
	}
	return s.WorkUpdateRepository.List(ctx, workupdate.ListFilter{
		ExcludeEmployeeID: identity.ID,
		ReviewStatus:      workupdate.ReviewPending,
	})
}
