package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"github.com/grofast/portal-backend-go/internal/fixtures"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/grofast/portal-backend-go/internal/pkg/sse"
	"github.com/grofast/portal-backend-go/internal/repository/directory"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
	appointmentsvc "github.com/grofast/portal-backend-go/internal/service/appointment"
	attendancesvc "github.com/grofast/portal-backend-go/internal/service/attendance"
	authsvc "github.com/grofast/portal-backend-go/internal/service/auth"
	capturesvc "github.com/grofast/portal-backend-go/internal/service/capture"
	chatsvc "github.com/grofast/portal-backend-go/internal/service/chat"
	dashboardsvc "github.com/grofast/portal-backend-go/internal/service/dashboard"
	leavesvc "github.com/grofast/portal-backend-go/internal/service/leave"
	learningsvc "github.com/grofast/portal-backend-go/internal/service/learning"
	meetingsvc "github.com/grofast/portal-backend-go/internal/service/meeting"
	reportsvc "github.com/grofast/portal-backend-go/internal/service/report"
	teamsvc "github.com/grofast/portal-backend-go/internal/service/team"
	workupdatesvc "github.com/grofast/portal-backend-go/internal/service/workupdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const handlerTestSecret = "test-secret-key-for-jwt"

var handlerTestNow = time.Date(2026, 1, 1, 14, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	sent []webhook.Endpoint
}

func (n *recordingNotifier) Notify(ctx context.Context, endpoint webhook.Endpoint, payload any) {}

func (n *recordingNotifier) Send(ctx context.Context, endpoint webhook.Endpoint, payload any) webhook.Result {
	n.sent = append(n.sent, endpoint)
	return webhook.Result{Success: true, StatusCode: http.StatusOK}
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingNotifier) {
	t.Helper()
	ctx := context.Background()
	now := clock.Fixed(handlerTestNow)

	store, err := snapshot.Open(ctx, kvstore.NewMemoryStore(), "", fixtures.Seed(clock.Date(handlerTestNow)))
	require.NoError(t, err)
	dir, err := directory.FromIdentities(fixtures.DemoIdentities())
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour, 24*time.Hour)
	sessions := authsvc.NewSessionService(kvstore.NewMemoryStore(), dir, jwtService, authsvc.Options{})
	hub := sse.NewHub()

	att := attendancesvc.NewAttendanceService(snapshot.NewAttendanceRepository(store), notifier, now)
	work := workupdatesvc.NewWorkUpdateService(snapshot.NewWorkUpdateRepository(store), notifier, now)
	lv := leavesvc.NewLeaveService(snapshot.NewLeaveRequestRepository(store), notifier, now)
	meet := meetingsvc.NewMeetingService(snapshot.NewMeetingRepository(store), now)
	learn := learningsvc.NewLearningService(snapshot.NewLearningRepository(store), notifier, now)
	apt := appointmentsvc.NewAppointmentService(snapshot.NewAppointmentRepository(store), dir, notifier, now)
	reports := reportsvc.NewReportService(store, dir, now)

	router := NewRouter(RouterConfig{AppName: "grofast-test", Env: "test"}, jwtService, sessions, Handlers{
		Auth:        NewAuthHandler(jwtService, sessions),
		Navigation:  NewNavigationHandler(jwtService, sessions),
		Dashboard:   NewDashboardHandler(dashboardsvc.NewDashboardService(att, work, lv, meet, learn, apt, now)),
		Attendance:  NewAttendanceHandler(att, capturesvc.NewCaptureService(att, nil, nil, now, time.Second)),
		Leave:       NewLeaveHandler(lv),
		WorkUpdate:  NewWorkUpdateHandler(work),
		Learning:    NewLearningHandler(learn),
		Appointment: NewAppointmentHandler(apt),
		Meeting:     NewMeetingHandler(meet),
		Chat:        NewChatHandler(chatsvc.NewChatService(snapshot.NewMessageRepository(store), snapshot.NewChatRepository(store), hub, now), jwtService, hub),
		Team:        NewTeamHandler(teamsvc.NewTeamService(snapshot.NewTeamRepository(store), dir, now)),
		Report:      NewReportHandler(reports),
		Admin:       NewAdminHandler(reports, notifier, now),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, notifier
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func do(t *testing.T, srv *httptest.Server, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func login(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	resp, env := do(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "demo",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tokens struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID        string `json:"id"`
			RoleLabel string `json:"roleLabel"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens.AccessToken)

	var refresh *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "refresh_token" {
			refresh = c
		}
	}
	require.NotNil(t, refresh, "refresh cookie should be set")
	return tokens.AccessToken
}

func TestLoginThenDashboard(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "ravi@grofast.com")

	resp, env := do(t, srv, http.MethodGet, "/api/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var overview struct {
		Greeting string `json:"greeting"`
		Profile  struct {
			RoleLabel string `json:"roleLabel"`
		} `json:"profile"`
		Stats struct {
			PendingLeaves    int `json:"pendingLeaves"`
			UpcomingMeetings int `json:"upcomingMeetings"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &overview))
	assert.Equal(t, "Good afternoon", overview.Greeting)
	assert.Equal(t, "Employee", overview.Profile.RoleLabel)
	assert.Equal(t, 1, overview.Stats.PendingLeaves)
	assert.Equal(t, 2, overview.Stats.UpcomingMeetings)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := do(t, srv, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "ghost@grofast.com",
		"password": "demo",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, srv, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/dashboard", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutRevokesAccess(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "ravi@grofast.com")

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoleGatedRoutes(t *testing.T) {
	srv, notifier := newTestServer(t)
	employee := login(t, srv, "ravi@grofast.com")
	admin := login(t, srv, "admin@grofast.com")

	resp, env := do(t, srv, http.MethodGet, "/api/v1/admin/stats", employee, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "access denied", env.Error.Message)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/reports?range=week", employee, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodGet, "/api/v1/admin/stats", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = do(t, srv, http.MethodPost, "/api/v1/admin/webhook/test", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []webhook.Endpoint{webhook.EndpointTest}, notifier.sent)
}

func TestAdminExportDownload(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin@grofast.com")

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/export?format=json", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "grofast-data-export-2026-01-01.json")
}

func TestNavigation(t *testing.T) {
	srv, _ := newTestServer(t)

	_, env := do(t, srv, http.MethodGet, "/api/v1/navigation?path=/reports", "", nil)
	var anon struct {
		Decision struct {
			Screen   string `json:"screen"`
			Redirect string `json:"redirect"`
		} `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &anon))
	assert.Equal(t, "login", anon.Decision.Screen)
	assert.Equal(t, "/login", anon.Decision.Redirect)

	token := login(t, srv, "ravi@grofast.com")
	_, env = do(t, srv, http.MethodGet, "/api/v1/navigation?path=/admin-panel", token, nil)
	var authed struct {
		Decision struct {
			Screen       string `json:"screen"`
			AccessDenied bool   `json:"accessDenied"`
		} `json:"decision"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &authed))
	assert.Equal(t, "admin-panel", authed.Decision.Screen)
	assert.True(t, authed.Decision.AccessDenied)
}

func TestMarkAttendanceThroughAPI(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "ravi@grofast.com")

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/attendance", token, map[string]any{"device": "test"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := do(t, srv, http.MethodGet, "/api/v1/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var today struct {
		Marked bool `json:"marked"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &today))
	assert.True(t, today.Marked)

	resp, env = do(t, srv, http.MethodPost, "/api/v1/attendance/capture", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "already-marked", view.State)
}
