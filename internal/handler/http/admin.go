package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/report"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
)

type AdminHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	TestWebhook(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	reportService report.ReportService
	notifier      webhook.Notifier
	now           clock.Clock
}

func NewAdminHandler(reportService report.ReportService, notifier webhook.Notifier, now clock.Clock) AdminHandler {
	return &adminHandlerImpl{
		reportService: reportService,
		notifier:      notifier,
		now:           now,
	}
}

// Stats implements AdminHandler.
func (h *adminHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.AdminStats(r.Context())
	if err != nil {
		slog.Error("AdminStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Export implements AdminHandler. ?format=xlsx selects the workbook.
func (h *adminHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportFile(r.Context(), r.URL.Query().Get("format"))
	if err != nil {
		slog.Error("ExportFile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, file.Name, file.ContentType, file.Body)
}

type testWebhookPayload struct {
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// TestWebhook implements AdminHandler. The delivery is synchronous so the
// outcome can be reported back.
func (h *adminHandlerImpl) TestWebhook(w http.ResponseWriter, r *http.Request) {
	result := h.notifier.Send(r.Context(), webhook.EndpointTest, testWebhookPayload{
		Type:      "test",
		Message:   "Test webhook from Grofast Team Platform",
		Timestamp: h.now().UTC(),
	})
	if !result.Success {
		slog.Warn("test webhook failed", "status", result.StatusCode, "error", result.Error)
	}
	response.Success(w, result)
}
