package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name    string
	headers []string
	rows    [][]any
}

func optString(s *string) any {
	if s == nil {
		return ""
	}
	return *s
}

func optFloat(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}

func optTime(t *time.Time) any {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func exportSheets(export report.DataExport) []sheet {
	users := sheet{name: "Users", headers: []string{"id", "name", "email", "role", "team", "department"}}
	for _, u := range export.Users {
		users.rows = append(users.rows, []any{u.ID, u.Name, u.Email, string(u.Role), u.Team, u.Department})
	}

	teams := sheet{name: "Teams", headers: []string{"id", "name", "department", "leadId", "members", "createdAt"}}
	for _, t := range export.Teams {
		teams.rows = append(teams.rows, []any{t.ID, t.Name, t.Department, t.LeadID, strings.Join(t.Members, ","), t.CreatedAt})
	}

	att := sheet{name: "Attendance", headers: []string{"id", "date", "employeeId", "checkIn", "checkOut", "status", "latitude", "longitude", "address", "device"}}
	for _, a := range export.Attendance {
		att.rows = append(att.rows, []any{
			a.ID, a.Date, a.EmployeeID, optTime(a.CheckIn), optTime(a.CheckOut), string(a.Status),
			optFloat(a.Latitude), optFloat(a.Longitude), optString(a.Address), optString(a.Device),
		})
	}

	leaves := sheet{name: "LeaveRequests", headers: []string{"id", "employeeId", "employeeName", "team", "leaveType", "fromDate", "toDate", "reason", "status", "approvedBy", "createdAt"}}
	for _, l := range export.LeaveRequests {
		leaves.rows = append(leaves.rows, []any{
			l.ID, l.EmployeeID, l.EmployeeName, l.Team, string(l.LeaveType), l.FromDate, l.ToDate,
			l.Reason, string(l.Status), optString(l.ApprovedBy), l.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	updates := sheet{name: "WorkUpdates", headers: []string{"id", "date", "employeeId", "employeeName", "team", "yesterdayWork", "todayPlan", "blockers", "timeSpent", "reviewStatus", "seniorComment", "submittedAt"}}
	for _, u := range export.WorkUpdates {
		updates.rows = append(updates.rows, []any{
			u.ID, u.Date, u.EmployeeID, u.EmployeeName, u.Team, u.YesterdayWork, u.TodayPlan, u.Blockers,
			u.TimeSpent, string(u.ReviewStatus), optString(u.SeniorComment), u.SubmittedAt.UTC().Format(time.RFC3339),
		})
	}

	learn := sheet{name: "Learning", headers: []string{"id", "date", "employeeId", "employeeName", "topic", "learningType", "timeSpent", "confidence", "resourceLink", "notes"}}
	for _, e := range export.Learning {
		learn.rows = append(learn.rows, []any{
			e.ID, e.Date, e.EmployeeID, e.EmployeeName, e.Topic, string(e.LearningType),
			e.TimeSpent, e.Confidence, e.ResourceLink, e.Notes,
		})
	}

	return []sheet{users, teams, att, leaves, updates, learn}
}

// workbook renders the export with one sheet per collection and a header
// row on each.
func workbook(export report.DataExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, sh := range exportSheets(export) {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, sh.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sh.name, err)
		}

		if err := f.SetSheetRow(sh.name, "A1", &sh.headers); err != nil {
			return nil, fmt.Errorf("failed to write %s header: %w", sh.name, err)
		}
		for r, row := range sh.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sh.name, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write %s row %d: %w", sh.name, r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
