// Package navigation decides which screens and sections a session may see.
// Everything here is a pure function of (authenticated, role).
package navigation

import (
	"strings"

	"github.com/grofast/portal-backend-go/internal/domain/user"
)

type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenDashboard        Screen = "dashboard"
	ScreenAttendance       Screen = "attendance"
	ScreenTeams            Screen = "teams"
	ScreenChat             Screen = "chat"
	ScreenMeetings         Screen = "meetings"
	ScreenDailyUpdate      Screen = "daily-update"
	ScreenLearningBoard    Screen = "learning-board"
	ScreenProgressionBoard Screen = "progression-board"
	ScreenAppointments     Screen = "appointments"
	ScreenLeave            Screen = "leave"
	ScreenProfile          Screen = "profile"
	ScreenAdminPanel       Screen = "admin-panel"
	ScreenReports          Screen = "reports"
)

// Screens is every screen reachable by an authenticated session, in menu order.
var Screens = []Screen{
	ScreenDashboard,
	ScreenAttendance,
	ScreenTeams,
	ScreenChat,
	ScreenMeetings,
	ScreenDailyUpdate,
	ScreenLearningBoard,
	ScreenProgressionBoard,
	ScreenAppointments,
	ScreenLeave,
	ScreenProfile,
	ScreenAdminPanel,
	ScreenReports,
}

// aliases map extra paths onto screens.
var aliases = map[string]Screen{
	"calendar": ScreenMeetings,
}

type MenuItem struct {
	Screen Screen `json:"screen"`
	Label  string `json:"label"`
	Path   string `json:"path"`
}

var mainMenu = []MenuItem{
	{ScreenDashboard, "Dashboard", "/dashboard"},
	{ScreenTeams, "Teams", "/teams"},
	{ScreenChat, "Chat", "/chat"},
	{ScreenMeetings, "Meetings", "/meetings"},
	{ScreenDailyUpdate, "Daily Update", "/daily-update"},
	{ScreenLearningBoard, "Learning", "/learning-board"},
	{ScreenProgressionBoard, "Progression", "/progression-board"},
}

var requestMenu = []MenuItem{
	{ScreenAppointments, "Appointments", "/appointments"},
	{ScreenLeave, "Leave", "/leave"},
}

var adminMenu = []MenuItem{
	{ScreenAdminPanel, "Admin Panel", "/admin-panel"},
	{ScreenReports, "Reports", "/reports"},
}

// Sections flags the role-gated parts of screens.
type Sections struct {
	AdminNav             bool `json:"adminNav"`
	Approvals            bool `json:"approvals"`
	ReviewQueue          bool `json:"reviewQueue"`
	Reports              bool `json:"reports"`
	TeamManagement       bool `json:"teamManagement"`
	IncomingAppointments bool `json:"incomingAppointments"`
}

type View struct {
	Authenticated bool       `json:"authenticated"`
	Role          user.Role  `json:"role,omitempty"`
	RoleLabel     string     `json:"roleLabel,omitempty"`
	Screens       []Screen   `json:"screens"`
	Menu          []MenuItem `json:"menu"`
	Sections      Sections   `json:"sections"`
}

// Resolve computes the reachable screens, menu and section flags.
func Resolve(authenticated bool, role user.Role) View {
	if !authenticated {
		return View{Screens: []Screen{ScreenLogin}, Menu: []MenuItem{}}
	}

	identity := &user.Identity{Role: role}
	sections := Sections{
		AdminNav:             identity.IsAdministrative(),
		Approvals:            identity.IsReviewer(),
		ReviewQueue:          identity.IsReviewer(),
		Reports:              canViewReports(role),
		TeamManagement:       identity.CanManageTeams(),
		IncomingAppointments: role == user.RoleTeamLead || role == user.RoleSenior || role == user.RoleMD,
	}

	menu := append(append([]MenuItem{}, mainMenu...), requestMenu...)
	if sections.AdminNav {
		menu = append(menu, adminMenu...)
	}

	return View{
		Authenticated: true,
		Role:          role,
		RoleLabel:     user.RoleLabel(role),
		Screens:       append([]Screen{}, Screens...),
		Menu:          menu,
		Sections:      sections,
	}
}

func canViewReports(role user.Role) bool {
	switch role {
	case user.RoleTeamLead, user.RoleSenior, user.RoleMD, user.RoleAdmin:
		return true
	}
	return false
}

// Decision is the outcome of routing a path.
type Decision struct {
	Screen Screen `json:"screen"`
	// Redirect is set when the requested path is not the rendered one.
	Redirect     string `json:"redirect,omitempty"`
	AccessDenied bool   `json:"accessDenied"`
}

// Route resolves a requested path. Unauthenticated sessions always land on
// login, authenticated sessions never do, and unknown paths fall back to
// the dashboard. Role-gated screens still render, with AccessDenied set.
func Route(path string, authenticated bool, role user.Role) Decision {
	name := strings.Trim(strings.ToLower(path), "/")

	if !authenticated {
		if name == string(ScreenLogin) {
			return Decision{Screen: ScreenLogin}
		}
		return Decision{Screen: ScreenLogin, Redirect: "/login"}
	}

	screen, ok := lookup(name)
	if !ok {
		return Decision{Screen: ScreenDashboard, Redirect: "/dashboard"}
	}

	d := Decision{Screen: screen}
	if string(screen) != name {
		d.Redirect = "/" + string(screen)
	}

	identity := &user.Identity{Role: role}
	switch screen {
	case ScreenAdminPanel:
		d.AccessDenied = !identity.IsAdministrative()
	case ScreenReports:
		d.AccessDenied = !canViewReports(role)
	}
	return d
}

func lookup(name string) (Screen, bool) {
	if s, ok := aliases[name]; ok {
		return s, true
	}
	for _, s := range Screens {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}
