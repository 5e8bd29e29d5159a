package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/idgen"
)

type TeamServiceImpl struct {
	team.TeamRepository
	directory user.Directory
	now       clock.Clock
}

func NewTeamService(repo team.TeamRepository, directory user.Directory, now clock.Clock) team.TeamService {
	return &TeamServiceImpl{TeamRepository: repo, directory: directory, now: now}
}

// CreateTeam implements team.TeamService.
func (s *TeamServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.Team, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return team.Team{}, err
	}
	if !identity.CanManageTeams() {
		return team.Team{}, user.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return team.Team{}, err
	}

	created, err := s.TeamRepository.Create(ctx, req.Build(idgen.New(idgen.PrefixTeam), s.now()))
	if err != nil {
		return team.Team{}, fmt.Errorf("failed to save team: %w", err)
	}
	return created, nil
}

// GetTeam implements team.TeamService.
func (s *TeamServiceImpl) GetTeam(ctx context.Context, id string) (team.TeamResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return team.TeamResponse{}, err
	}
	t, err := s.TeamRepository.GetByID(ctx, id)
	if err != nil {
		return team.TeamResponse{}, err
	}
	return s.resolve(ctx, identity, t)
}

// ListTeams implements team.TeamService.
func (s *TeamServiceImpl) ListTeams(ctx context.Context) ([]team.TeamResponse, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.TeamRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]team.TeamResponse, 0, len(teams))
	for _, t := range teams {
		r, err := s.resolve(ctx, identity, t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// resolve attaches names and roles. Ids missing from the directory are
// left out of MemberDetails.
func (s *TeamServiceImpl) resolve(ctx context.Context, viewer user.Identity, t team.Team) (team.TeamResponse, error) {
	resp := team.TeamResponse{
		Team:           t,
		MemberDetails:  []team.Member{},
		CanManageTeams: viewer.CanManageTeams(),
	}

	if t.LeadID != "" {
		lead, err := s.directory.FindByID(ctx, t.LeadID)
		switch {
		case err == nil:
			resp.LeadName = lead.Identity.Name
		case !errors.Is(err, user.ErrUserNotFound):
			return team.TeamResponse{}, err
		}
	}

	for _, id := range t.Members {
		entry, err := s.directory.FindByID(ctx, id)
		if errors.Is(err, user.ErrUserNotFound) {
			continue
		}
		if err != nil {
			return team.TeamResponse{}, err
		}
		resp.MemberDetails = append(resp.MemberDetails, team.Member{
			ID:        id,
			Name:      entry.Identity.Name,
			Role:      string(entry.Identity.Role),
			RoleLabel: user.RoleLabel(entry.Identity.Role),
			IsLead:    id == t.LeadID,
		})
	}
	return resp, nil
}
