package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grofast/portal-backend-go/internal/domain/team"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type TeamHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type teamHandlerImpl struct {
	teamService team.TeamService
}

func NewTeamHandler(teamService team.TeamService) TeamHandler {
	return &teamHandlerImpl{teamService: teamService}
}

// Create implements TeamHandler.
func (h *teamHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest
	if !decodeJSON(w, r, &req, "CreateTeam") {
		return
	}

	created, err := h.teamService.CreateTeam(r.Context(), req)
	if err != nil {
		slog.Error("CreateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Team created", created)
}

// Get implements TeamHandler.
func (h *teamHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.teamService.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("GetTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// List implements TeamHandler.
func (h *teamHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		slog.Error("ListTeams service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMeta(w, teams, &response.Meta{Total: len(teams)})
}
