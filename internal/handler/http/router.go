package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/grofast/portal-backend-go/internal/domain/auth"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/handler/http/middleware"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	// LogOutput receives request logs. Defaults to io.Discard.
	LogOutput io.Writer
	LogLevel  slog.Level
	// UploadsDir, when set, is served under /uploads for locally stored photos.
	UploadsDir string
}

type Handlers struct {
	Auth        AuthHandler
	Navigation  NavigationHandler
	Dashboard   DashboardHandler
	Attendance  AttendanceHandler
	Leave       LeaveHandler
	WorkUpdate  WorkUpdateHandler
	Learning    LearningHandler
	Appointment AppointmentHandler
	Meeting     MeetingHandler
	Chat        ChatHandler
	Team        TeamHandler
	Report      ReportHandler
	Admin       AdminHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, sessions auth.SessionService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	out := cfg.LogOutput
	if out == nil {
		out = io.Discard
	}
	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.AppName),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if cfg.UploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.With(jwtauth.Verifier(JWTService.JWTAuth())).Post("/logout", h.Auth.Logout)
		})

		// Anonymous callers get the login decision.
		r.With(jwtauth.Verifier(JWTService.JWTAuth())).Get("/navigation", h.Navigation.Get)

		authenticated := chi.Chain(
			jwtauth.Verifier(JWTService.JWTAuth()),
			middleware.AuthRequired(JWTService),
			middleware.LoadIdentity(sessions),
		)

		r.Route("/chats", func(r chi.Router) {
			// The stream authenticates with its own query token.
			r.Get("/stream", h.Chat.Stream)

			r.Group(func(r chi.Router) {
				r.Use(authenticated...)
				r.Get("/", h.Chat.List)
				r.Get("/stream-token", h.Chat.StreamToken)
				r.Get("/{id}/messages", h.Chat.Messages)
				r.Post("/{id}/messages", h.Chat.Send)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(authenticated...)

			r.Get("/me", h.Auth.Me)
			r.Patch("/me", h.Auth.UpdateMe)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetOverview)
				r.Get("/stats", h.Dashboard.GetStats)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.CapViewTeamData)).Get("/", h.Attendance.List)
				r.Post("/", h.Attendance.Mark)
				r.Get("/my", h.Attendance.ListMine)
				r.Get("/today", h.Attendance.GetToday)
				r.Post("/{id}/check-out", h.Attendance.CheckOut)

				r.Route("/capture", func(r chi.Router) {
					r.Post("/", h.Attendance.StartCapture)
					r.Get("/", h.Attendance.CaptureStatus)
					r.Delete("/", h.Attendance.CancelCapture)
					r.Post("/camera", h.Attendance.RetryCamera)
					r.Post("/frame", h.Attendance.UploadFrame)
					r.Post("/location", h.Attendance.Locate)
					r.Post("/location/skip", h.Attendance.SkipLocation)
					r.Post("/retake", h.Attendance.Retake)
					r.Post("/submit", h.Attendance.SubmitCapture)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Get("/", h.Leave.ListMine)
				r.Post("/", h.Leave.Submit)
				r.Get("/balance", h.Leave.Balance)
				r.Get("/pending", h.Leave.PendingApprovals)
				r.Put("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/work-updates", func(r chi.Router) {
				r.Get("/", h.WorkUpdate.ListMine)
				r.Post("/", h.WorkUpdate.Submit)
				r.Get("/today", h.WorkUpdate.GetToday)
				r.Get("/pending", h.WorkUpdate.PendingReviews)
				r.Put("/{id}/review", h.WorkUpdate.Review)
			})

			r.Route("/learning", func(r chi.Router) {
				r.Get("/", h.Learning.ListMine)
				r.Post("/", h.Learning.Submit)
				r.Get("/summary", h.Learning.Summary)
			})

			r.Route("/appointments", func(r chi.Router) {
				r.Get("/", h.Appointment.ListMine)
				r.Post("/", h.Appointment.Book)
				r.Get("/incoming", h.Appointment.Incoming)
				r.Get("/contacts", h.Appointment.Contacts)
				r.Put("/{id}/status", h.Appointment.UpdateStatus)
			})

			r.Route("/meetings", func(r chi.Router) {
				r.Get("/", h.Meeting.Upcoming)
				r.Get("/schedule", h.Meeting.Schedule)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Team.List)
				r.Post("/", h.Team.Create)
				r.Get("/{id}", h.Team.Get)
			})

			r.Get("/progression", h.Report.Progression)

			// Team lead and above
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireReviewer)
				r.Get("/", h.Report.Overview)
				r.Get("/{type}", h.Report.Generate)
				r.Get("/{type}/download", h.Report.Download)
			})

			// Admin and MD only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdministrative)
				r.Get("/stats", h.Admin.Stats)
				r.Get("/export", h.Admin.Export)
				r.Post("/webhook/test", h.Admin.TestWebhook)
			})
		})
	})
	return r
}
