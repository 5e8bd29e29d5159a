package team

import "context"

type TeamService interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (Team, error)
	GetTeam(ctx context.Context, id string) (TeamResponse, error)
	ListTeams(ctx context.Context) ([]TeamResponse, error)
}
