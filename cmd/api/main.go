package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grofast/portal-backend-go/internal/config"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	appHTTP "github.com/grofast/portal-backend-go/internal/handler/http"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/cron"
	"github.com/grofast/portal-backend-go/internal/pkg/database"
	"github.com/grofast/portal-backend-go/internal/pkg/geocode"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/pkg/logger"
	"github.com/grofast/portal-backend-go/internal/pkg/sse"
	"github.com/grofast/portal-backend-go/internal/pkg/storage"
	"github.com/grofast/portal-backend-go/internal/repository/directory"
	"github.com/grofast/portal-backend-go/internal/repository/postgresql"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	appointmentService "github.com/grofast/portal-backend-go/internal/service/appointment"
	attendanceService "github.com/grofast/portal-backend-go/internal/service/attendance"
	serviceAuth "github.com/grofast/portal-backend-go/internal/service/auth"
	captureService "github.com/grofast/portal-backend-go/internal/service/capture"
	chatService "github.com/grofast/portal-backend-go/internal/service/chat"
	dashboardService "github.com/grofast/portal-backend-go/internal/service/dashboard"
	learningService "github.com/grofast/portal-backend-go/internal/service/learning"
	leaveService "github.com/grofast/portal-backend-go/internal/service/leave"
	meetingService "github.com/grofast/portal-backend-go/internal/service/meeting"
	"github.com/grofast/portal-backend-go/internal/service/notification"
	reportService "github.com/grofast/portal-backend-go/internal/service/report"
	teamService "github.com/grofast/portal-backend-go/internal/service/team"
	workUpdateService "github.com/grofast/portal-backend-go/internal/service/workupdate"
)

const (
	appName    = "grofast-portal"
	appVersion = "v1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	logOutput := logger.Init(logger.Options{
		Level:      cfg.App.LogLevel,
		File:       cfg.App.LogFile,
		MaxSizeMB:  100,
		MaxBackups: 7,
		MaxAgeDays: 30,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	now := clock.System(cfg.Location())

	kv, err := openKVStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open kv backend", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer kv.Close()

	dir, err := openDirectory(cfg)
	if err != nil {
		slog.Error("Failed to load directory", "file", cfg.Directory.File, "error", err)
		os.Exit(1)
	}

	store, err := snapshot.Open(ctx, kv, cfg.Storage.SnapshotKey, fixtures.Seed(now.Today()))
	if err != nil {
		slog.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}

	photos, err := openFileStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize file storage", "type", cfg.Files.Type, "error", err)
		os.Exit(1)
	}

	dispatcher := notification.NewDispatcher(newWebhookSender(cfg), notification.Config{
		WorkerCount: cfg.Webhook.WorkerCount,
		QueueSize:   cfg.Webhook.QueueSize,
		MaxAttempts: cfg.Webhook.MaxAttempts,
		Timeout:     cfg.Webhook.Timeout,
	})
	defer dispatcher.Close()

	scheduler := cron.NewScheduler()
	cron.NewWebhookJobs(dispatcher).RegisterJobs(scheduler, cfg.Webhook.RetryInterval)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	geocoder := geocode.Fallback{Geocoder: geocode.NewNominatimClient(geocode.Options{
		BaseURL:   cfg.Geocode.BaseURL,
		UserAgent: cfg.Geocode.UserAgent,
		Timeout:   cfg.Geocode.Timeout,
		Cache:     kv,
		CacheTTL:  cfg.Geocode.CacheTTL,
	})}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	sessionService := serviceAuth.NewSessionService(kv, dir, JWTService, serviceAuth.Options{
		KeyPrefix:  cfg.Storage.SessionKeyPrefix,
		LoginDelay: cfg.App.LoginDelay,
		SessionTTL: cfg.Storage.SessionTTL,
	})
	hub := sse.NewHub()

	attendanceSvc := attendanceService.NewAttendanceService(snapshot.NewAttendanceRepository(store), dispatcher, now)
	leaveSvc := leaveService.NewLeaveService(snapshot.NewLeaveRequestRepository(store), dispatcher, now)
	workUpdateSvc := workUpdateService.NewWorkUpdateService(snapshot.NewWorkUpdateRepository(store), dispatcher, now)
	learningSvc := learningService.NewLearningService(snapshot.NewLearningRepository(store), dispatcher, now)
	appointmentSvc := appointmentService.NewAppointmentService(snapshot.NewAppointmentRepository(store), dir, dispatcher, now)
	meetingSvc := meetingService.NewMeetingService(snapshot.NewMeetingRepository(store), now)
	chatSvc := chatService.NewChatService(snapshot.NewMessageRepository(store), snapshot.NewChatRepository(store), hub, now)
	teamSvc := teamService.NewTeamService(snapshot.NewTeamRepository(store), dir, now)
	dashboardSvc := dashboardService.NewDashboardService(attendanceSvc, workUpdateSvc, leaveSvc, meetingSvc, learningSvc, appointmentSvc, now)
	reportSvc := reportService.NewReportService(store, dir, now)
	captureSvc := captureService.NewCaptureService(attendanceSvc, geocoder, photos, now, cfg.Capture.LocationTimeout)

	routerCfg := appHTTP.RouterConfig{
		AppName:        appName,
		Version:        appVersion,
		Env:            cfg.App.Env,
		AllowedOrigins: cfg.App.AllowedOrigins,
		LogOutput:      logOutput,
		LogLevel:       logger.ParseLevel(cfg.App.LogLevel),
	}
	if cfg.Files.Type == storage.BackendLocal {
		routerCfg.UploadsDir = cfg.Files.BasePath
	}

	router := appHTTP.NewRouter(routerCfg, JWTService, sessionService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(JWTService, sessionService),
		Navigation:  appHTTP.NewNavigationHandler(JWTService, sessionService),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc, captureSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		WorkUpdate:  appHTTP.NewWorkUpdateHandler(workUpdateSvc),
		Learning:    appHTTP.NewLearningHandler(learningSvc),
		Appointment: appHTTP.NewAppointmentHandler(appointmentSvc),
		Meeting:     appHTTP.NewMeetingHandler(meetingSvc),
		Chat:        appHTTP.NewChatHandler(chatSvc, JWTService, hub),
		Team:        appHTTP.NewTeamHandler(teamSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Admin:       appHTTP.NewAdminHandler(reportSvc, dispatcher, now),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}

func openKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.Storage.Backend {
	case kvstore.BackendRedis:
		return kvstore.NewRedisStore(ctx, cfg.Redis.URL, "")
	case kvstore.BackendPostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: cfg.Database.MaxConns})
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		if err := postgresql.EnsureKVSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return postgresql.NewKVBlobRepository(db), nil
	default:
		slog.Warn("Using in-memory kv backend; data is lost on restart")
		return kvstore.NewMemoryStore(), nil
	}
}

func openDirectory(cfg *config.Config) (user.Directory, error) {
	if cfg.Directory.File != "" {
		return directory.LoadYAML(cfg.Directory.File)
	}
	return directory.FromIdentities(fixtures.DemoIdentities())
}

// openFileStorage returns nil when photos are kept inline.
func openFileStorage(ctx context.Context, cfg *config.Config) (storage.FileStorage, error) {
	switch cfg.Files.Type {
	case storage.BackendLocal:
		return storage.NewLocalStorage(cfg.Files.BasePath, cfg.Files.BaseURL)
	case storage.BackendMinIO:
		return storage.NewMinIOStorage(ctx, storage.MinIOOptions{
			Endpoint:  cfg.Files.MinIOEndpoint,
			AccessKey: cfg.Files.MinIOAccessKey,
			SecretKey: cfg.Files.MinIOSecretKey,
			Bucket:    cfg.Files.MinIOBucket,
			UseSSL:    cfg.Files.MinIOUseSSL,
			Region:    cfg.Files.MinIORegion,
		})
	default:
		return nil, nil
	}
}

func newWebhookSender(cfg *config.Config) webhook.Sender {
	if cfg.Webhook.Mode != config.WebhookModeHTTP {
		return notification.LogSender{}
	}
	var auth *notification.OAuth2Options
	if cfg.Webhook.OAuth2ClientID != "" {
		auth = &notification.OAuth2Options{
			ClientID:     cfg.Webhook.OAuth2ClientID,
			ClientSecret: cfg.Webhook.OAuth2ClientSecret,
			TokenURL:     cfg.Webhook.OAuth2TokenURL,
			Scopes:       cfg.Webhook.OAuth2Scopes,
		}
	}
	return notification.NewHTTPSender(cfg.Webhook.BaseURL, cfg.Webhook.Timeout, auth)
}
