package report

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/attendance"
	"github.com/grofast/portal-backend-go/internal/domain/leave"
	"github.com/grofast/portal-backend-go/internal/domain/learning"
	"github.com/grofast/portal-backend-go/internal/domain/report"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/domain/workupdate"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/repository/snapshot"
)

// Source exposes a consistent copy of every record collection.
type Source interface {
	Snapshot() snapshot.Snapshot
}

type ReportServiceImpl struct {
	source    Source
	directory user.Directory
	now       clock.Clock
}

func NewReportService(source Source, directory user.Directory, now clock.Clock) report.ReportService {
	return &ReportServiceImpl{
		source:    source,
		directory: directory,
		now:       now,
	}
}

func requireReviewer(ctx context.Context) (user.Identity, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return user.Identity{}, err
	}
	if !identity.IsReviewer() {
		return user.Identity{}, user.ErrAccessDenied
	}
	return identity, nil
}

func requireAdministrative(ctx context.Context) (user.Identity, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return user.Identity{}, err
	}
	if !identity.IsAdministrative() {
		return user.Identity{}, user.ErrAccessDenied
	}
	return identity, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func attendanceStats(records []attendance.Attendance, from string) report.AttendanceStats {
	var stats report.AttendanceStats
	for _, a := range records {
		if a.Date < from {
			continue
		}
		stats.Total++
		if a.IsPresent() {
			stats.Present++
		}
	}
	stats.Absent = stats.Total - stats.Present
	stats.Rate = percent(stats.Present, max(stats.Total, 1))
	return stats
}

func workStats(updates []workupdate.WorkUpdate, from string) report.WorkStats {
	var stats report.WorkStats
	for _, u := range updates {
		if u.Date < from {
			continue
		}
		stats.Total++
		switch u.ReviewStatus {
		case workupdate.ReviewApproved:
			stats.Approved++
		case workupdate.ReviewPending:
			stats.Pending++
		case workupdate.ReviewNeedsImprovement:
			stats.NeedsImprovement++
		}
	}
	return stats
}

// learningStats picks the most frequent learning type as TopType; ties go
// to the type seen first.
func learningStats(entries []learning.Entry, from string) report.LearningStats {
	var (
		stats      report.LearningStats
		confidence int
		counts     = map[learning.LearningType]int{}
		order      []learning.LearningType
	)
	for _, e := range entries {
		if e.Date < from {
			continue
		}
		stats.Sessions++
		stats.TotalHours += learning.Hours(e.TimeSpent)
		confidence += e.Confidence
		if counts[e.LearningType] == 0 {
			order = append(order, e.LearningType)
		}
		counts[e.LearningType]++
	}

	stats.TotalHours = round1(stats.TotalHours)
	if stats.Sessions > 0 {
		stats.AvgConfidence = round1(float64(confidence) / float64(stats.Sessions))
	}
	best := 0
	for _, t := range order {
		if counts[t] > best {
			best = counts[t]
			stats.TopType = string(t)
		}
	}
	return stats
}

func leaveStats(requests []leave.LeaveRequest, from time.Time) report.LeaveStats {
	var stats report.LeaveStats
	for _, l := range requests {
		if l.CreatedAt.Before(from) {
			continue
		}
		stats.Total++
		switch l.Status {
		case leave.StatusApproved:
			stats.Approved++
		case leave.StatusRejected:
			stats.Rejected++
		case leave.StatusPending:
			stats.Pending++
		}
	}
	return stats
}

func (s *ReportServiceImpl) window(r report.Range) (time.Time, time.Time) {
	end := s.now()
	return end.AddDate(0, 0, -r.Days()), end
}

// Overview implements report.ReportService.
func (s *ReportServiceImpl) Overview(ctx context.Context, r report.Range) (report.Overview, error) {
	if _, err := requireReviewer(ctx); err != nil {
		return report.Overview{}, err
	}
	if !r.IsValid() {
		return report.Overview{}, report.ErrInvalidRange
	}

	start, _ := s.window(r)
	from := clock.Date(start)
	data := s.source.Snapshot()

	return report.Overview{
		Range:      r,
		Attendance: attendanceStats(data.Attendance, from),
		Work:       workStats(data.WorkUpdates, from),
		Learning:   learningStats(data.Learning, from),
		Leave:      leaveStats(data.LeaveRequests, start),
	}, nil
}

// Generate implements report.ReportService.
func (s *ReportServiceImpl) Generate(ctx context.Context, t report.Type, r report.Range) (report.Report, error) {
	if !t.IsValid() {
		return report.Report{}, report.ErrInvalidReportType
	}
	overview, err := s.Overview(ctx, r)
	if err != nil {
		return report.Report{}, err
	}

	start, end := s.window(r)
	doc := report.Report{
		GeneratedAt: end.UTC(),
		DateRange:   report.DateRange{Start: start.UTC(), End: end.UTC()},
		ReportType:  t,
	}
	switch t {
	case report.TypeAttendance:
		doc.Data = overview.Attendance
	case report.TypeWork:
		doc.Data = overview.Work
	case report.TypeLearning:
		doc.Data = overview.Learning
	case report.TypeLeave:
		doc.Data = overview.Leave
	}
	return doc, nil
}

// Download implements report.ReportService.
func (s *ReportServiceImpl) Download(ctx context.Context, t report.Type, r report.Range) (report.File, error) {
	doc, err := s.Generate(ctx, t, r)
	if err != nil {
		return report.File{}, err
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return report.File{}, fmt.Errorf("failed to encode report: %w", err)
	}
	return report.File{
		Name:        fmt.Sprintf("grofast-%s-report-%s.json", t, s.now.Today()),
		ContentType: "application/json",
		Body:        body,
	}, nil
}

// Progression implements report.ReportService. Rates are measured against
// an approximate count of working days in the range.
func (s *ReportServiceImpl) Progression(ctx context.Context, r report.Range) (report.Progression, error) {
	identity, err := user.FromContext(ctx)
	if err != nil {
		return report.Progression{}, err
	}
	if !r.IsValid() {
		return report.Progression{}, report.ErrInvalidRange
	}

	from := s.now.DaysAgo(r.Days())
	data := s.source.Snapshot()
	p := report.Progression{
		Range:    r,
		WorkDays: r.Days() * 5 / 7,
	}

	for _, a := range data.Attendance {
		if a.EmployeeID == identity.ID && a.Date >= from && a.IsPresent() {
			p.DaysPresent++
		}
	}
	for _, u := range data.WorkUpdates {
		if u.EmployeeID == identity.ID && u.Date >= from {
			p.UpdatesCount++
		}
	}

	var mine []learning.Entry
	for _, e := range data.Learning {
		if e.EmployeeID == identity.ID {
			mine = append(mine, e)
		}
	}
	ls := learningStats(mine, from)
	p.LearningHours = ls.TotalHours
	p.AvgConfidence = ls.AvgConfidence
	p.LearningStreak = learning.Streak(mine, s.now())

	p.AttendanceRate = percent(p.DaysPresent, p.WorkDays)
	p.UpdateRate = percent(p.UpdatesCount, p.WorkDays)
	p.OverallScore = int(math.Round(
		float64(p.AttendanceRate)*0.3 +
			float64(p.UpdateRate)*0.3 +
			math.Min(p.LearningHours*10, 100)*0.2 +
			p.AvgConfidence*20*0.2,
	))
	return p, nil
}

// AdminStats implements report.ReportService.
func (s *ReportServiceImpl) AdminStats(ctx context.Context) (report.AdminStats, error) {
	if _, err := requireAdministrative(ctx); err != nil {
		return report.AdminStats{}, err
	}

	users, err := s.directory.List(ctx)
	if err != nil {
		return report.AdminStats{}, fmt.Errorf("failed to list users: %w", err)
	}

	today := s.now.Today()
	data := s.source.Snapshot()
	stats := report.AdminStats{
		TotalUsers:  len(users),
		ActiveUsers: len(users),
		TotalTeams:  len(data.Teams),
	}
	for _, l := range data.LeaveRequests {
		if l.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}
	for _, a := range data.Attendance {
		if a.Date == today && a.IsPresent() {
			stats.TodayAttendance++
		}
	}
	for _, u := range data.WorkUpdates {
		if u.Date == today {
			stats.TodayUpdates++
		}
	}
	return stats, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context) (report.DataExport, error) {
	if _, err := requireAdministrative(ctx); err != nil {
		return report.DataExport{}, err
	}

	users, err := s.directory.List(ctx)
	if err != nil {
		return report.DataExport{}, fmt.Errorf("failed to list users: %w", err)
	}

	data := s.source.Snapshot()
	return report.DataExport{
		ExportDate:    s.now().UTC(),
		Users:         users,
		Teams:         data.Teams,
		Attendance:    data.Attendance,
		LeaveRequests: data.LeaveRequests,
		WorkUpdates:   data.WorkUpdates,
		Learning:      data.Learning,
	}, nil
}

// ExportFile implements report.ReportService.
func (s *ReportServiceImpl) ExportFile(ctx context.Context, format string) (report.File, error) {
	if format == "" {
		format = report.FormatJSON
	}
	if format != report.FormatJSON && format != report.FormatXLSX {
		return report.File{}, report.ErrInvalidFormat
	}

	export, err := s.Export(ctx)
	if err != nil {
		return report.File{}, err
	}

	name := fmt.Sprintf("grofast-data-export-%s.%s", s.now.Today(), format)
	if format == report.FormatJSON {
		body, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return report.File{}, fmt.Errorf("failed to encode export: %w", err)
		}
		return report.File{Name: name, ContentType: "application/json", Body: body}, nil
	}

	body, err := workbook(export)
	if err != nil {
		return report.File{}, err
	}
	return report.File{
		Name:        name,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}
