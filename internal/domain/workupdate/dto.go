package workupdate

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type SubmitWorkUpdateRequest struct {
	YesterdayWork string   `json:"yesterdayWork"`
	TodayPlan     string   `json:"todayPlan"`
	Blockers      string   `json:"blockers"`
	TimeSpent     string   `json:"timeSpent"`
	Attachments   []string `json:"attachments"`

	Date         *string       `json:"date,omitempty"`
	EmployeeID   *string       `json:"employeeId,omitempty"`
	EmployeeName *string       `json:"employeeName,omitempty"`
	Team         *string       `json:"team,omitempty"`
	ReviewStatus *ReviewStatus `json:"reviewStatus,omitempty"`
	SubmittedAt  *time.Time    `json:"submittedAt,omitempty"`
}

func (r *SubmitWorkUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("yesterdayWork", r.YesterdayWork)
	errs.Required("todayPlan", r.TodayPlan)

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}
	if r.ReviewStatus != nil && !r.ReviewStatus.IsValid() {
		errs.Add("reviewStatus", "invalid review status")
	}

	return errs.Err()
}

func (r SubmitWorkUpdateRequest) Build(id string, actor user.Identity, now time.Time) WorkUpdate {
	attachments := r.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	u := WorkUpdate{
		ID:            id,
		Date:          now.Format(clock.DateLayout),
		EmployeeID:    actor.ID,
		EmployeeName:  actor.Name,
		Team:          actor.Team,
		YesterdayWork: r.YesterdayWork,
		TodayPlan:     r.TodayPlan,
		Blockers:      r.Blockers,
		TimeSpent:     r.TimeSpent,
		Attachments:   attachments,
		ReviewStatus:  ReviewPending,
		SubmittedAt:   now.UTC(),
	}

	if r.Date != nil {
		u.Date = *r.Date
	}
	if r.EmployeeID != nil {
		u.EmployeeID = *r.EmployeeID
	}
	if r.EmployeeName != nil {
		u.EmployeeName = *r.EmployeeName
	}
	if r.Team != nil {
		u.Team = *r.Team
	}
	if r.ReviewStatus != nil {
		u.ReviewStatus = *r.ReviewStatus
	}
	if r.SubmittedAt != nil {
		u.SubmittedAt = *r.SubmittedAt
	}
	return u
}

type ReviewRequest struct {
	Status  ReviewStatus `json:"status"`
	Comment *string      `json:"comment,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status != ReviewApproved && r.Status != ReviewNeedsImprovement {
		errs.Add("status", "status must be approved or needs_improvement")
	}
	return errs.Err()
}

type ListFilter struct {
	EmployeeID        string
	ExcludeEmployeeID string
	ReviewStatus      ReviewStatus
	Date              string
}
