package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/grofast/portal-backend-go/internal/domain/report"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Progression(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// rangeParam reads ?range=, defaulting to the last week.
func rangeParam(r *http.Request) report.Range {
	if v := r.URL.Query().Get("range"); v != "" {
		return report.Range(v)
	}
	return report.RangeWeek
}

// Overview handles GET /reports
func (h *reportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.reportService.Overview(r.Context(), rangeParam(r))
	if err != nil {
		slog.Error("Report Overview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}

// Generate handles GET /reports/{type}
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	generated, err := h.reportService.Generate(r.Context(), report.Type(chi.URLParam(r, "type")), rangeParam(r))
	if err != nil {
		slog.Error("Generate report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, generated)
}

// Download handles GET /reports/{type}/download
func (h *reportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.Download(r.Context(), report.Type(chi.URLParam(r, "type")), rangeParam(r))
	if err != nil {
		slog.Error("Download report service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Body)
}

// Progression handles GET /progression
func (h *reportHandlerImpl) Progression(w http.ResponseWriter, r *http.Request) {
	progression, err := h.reportService.Progression(r.Context(), rangeParam(r))
	if err != nil {
		slog.Error("Progression service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, progression)
}
