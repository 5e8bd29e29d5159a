package snapshot

import (
	"context"

	"github.com/grofast/portal-backend-go/internal/domain/learning"
)

type learningRepositoryImpl struct {
	records collection[learning.Entry]
}

func NewLearningRepository(store *Store) learning.LearningRepository {
	return &learningRepositoryImpl{records: collection[learning.Entry]{
		store: store,
		slot:  func(d *Snapshot) *[]learning.Entry { return &d.Learning },
		id:    func(e learning.Entry) string { return e.ID },
	}}
}

// Create implements learning.LearningRepository.
func (r *learningRepositoryImpl) Create(ctx context.Context, e learning.Entry) (learning.Entry, error) {
	if err := r.records.insert(ctx, e); err != nil {
		return learning.Entry{}, err
	}
	return e, nil
}

// ListByEmployee implements learning.LearningRepository.
func (r *learningRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]learning.Entry, error) {
	return r.records.filter(func(e learning.Entry) bool { return e.EmployeeID == employeeID }), nil
}

// List implements learning.LearningRepository.
func (r *learningRepositoryImpl) List(ctx context.Context) ([]learning.Entry, error) {
	return r.records.filter(nil), nil
}
