package workupdate

import "time"

type ReviewStatus string

const (
	ReviewPending          ReviewStatus = "pending"
	ReviewApproved         ReviewStatus = "approved"
	ReviewNeedsImprovement ReviewStatus = "needs_improvement"
)

func (s ReviewStatus) IsValid() bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewNeedsImprovement
}

// WorkUpdate is a daily standup entry. One per employee per date is
// expected but not enforced.
type WorkUpdate struct {
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	EmployeeID    string       `json:"employeeId"`
	EmployeeName  string       `json:"employeeName"`
	Team          string       `json:"team"`
	YesterdayWork string       `json:"yesterdayWork"`
	TodayPlan     string       `json:"todayPlan"`
	Blockers      string       `json:"blockers"`
	TimeSpent     string       `json:"timeSpent"`
	Attachments   []string     `json:"attachments"`
	ReviewStatus  ReviewStatus `json:"reviewStatus"`
	SeniorComment *string      `json:"seniorComment"`
	SubmittedAt   time.Time    `json:"submittedAt"`
}
