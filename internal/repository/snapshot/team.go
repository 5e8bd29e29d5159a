package snapshot

import (
	"context"
	"errors"

	"github.com/grofast/portal-backend-go/internal/domain/team"
)

type teamRepositoryImpl struct {
	records collection[team.Team]
}

func NewTeamRepository(store *Store) team.TeamRepository {
	return &teamRepositoryImpl{records: collection[team.Team]{
		store: store,
		slot:  func(d *Snapshot) *[]team.Team { return &d.Teams },
		id:    func(t team.Team) string { return t.ID },
	}}
}

// Create implements team.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	if err := r.records.insert(ctx, t); err != nil {
		return team.Team{}, err
	}
	return t, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	t, err := r.records.get(id)
	if errors.Is(err, ErrRecordNotFound) {
		return team.Team{}, team.ErrTeamNotFound
	}
	return t, err
}

// List implements team.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context) ([]team.Team, error) {
	return r.records.filter(nil), nil
}
