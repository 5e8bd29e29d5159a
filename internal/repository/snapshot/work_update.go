package snapshot

import (
	"context"
	"errors"

	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
)

type workUpdateRepositoryImpl struct {
	records collection[workupdate.WorkUpdate]
}

func NewWorkUpdateRepository(store *Store) workupdate.WorkUpdateRepository {
	return &workUpdateRepositoryImpl{records: collection[workupdate.WorkUpdate]{
		store: store,
		slot:  func(d *Snapshot) *[]workupdate.WorkUpdate { return &d.WorkUpdates },
		id:    func(u workupdate.WorkUpdate) string { return u.ID },
	}}
}

// Create implements workupdate.WorkUpdateRepository.
func (r *workUpdateRepositoryImpl) Create(ctx context.Context, u workupdate.WorkUpdate) (workupdate.WorkUpdate, error) {
	if err := r.records.insert(ctx, u); err != nil {
		return workupdate.WorkUpdate{}, err
	}
	return u, nil
}

// Review implements workupdate.WorkUpdateRepository.
func (r *workUpdateRepositoryImpl) Review(ctx context.Context, id string, status workupdate.ReviewStatus, comment *string) (workupdate.WorkUpdate, error) {
	u, err := r.records.replace(ctx, id, func(u workupdate.WorkUpdate) workupdate.WorkUpdate {
		u.ReviewStatus = status
		u.SeniorComment = comment
		return u
	})
	if errors.Is(err, ErrRecordNotFound) {
		return workupdate.WorkUpdate{}, workupdate.ErrWorkUpdateNotFound
	}
	return u, err
}

// List implements workupdate.WorkUpdateRepository.
func (r *workUpdateRepositoryImpl) List(ctx context.Context, filter workupdate.ListFilter) ([]workupdate.WorkUpdate, error) {
	return r.records.filter(func(u workupdate.WorkUpdate) bool {
		if filter.EmployeeID != "" && u.EmployeeID != filter.EmployeeID {
			return false
		}
		if filter.ExcludeEmployeeID != "" && u.EmployeeID == filter.ExcludeEmployeeID {
			return false
		}
		if filter.ReviewStatus != "" && u.ReviewStatus != filter.ReviewStatus {
			return false
		}
		if filter.Date != "" && u.Date != filter.Date {
			return false
		}
		return true
	}), nil
}
