package http

import (
	"log/slog"
	"net/http"

	"github.com/grofast/portal-backend-go/internal/domain/dashboard"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOverview implements DashboardHandler.
func (h *DashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.dashboardService.GetOverview(r.Context())
	if err != nil {
		slog.Error("GetOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetDashboardStats(r.Context())
	if err != nil {
		slog.Error("GetDashboardStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
