package learning

import (
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/clock"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type SubmitLearningRequest struct {
	Topic        string       `json:"topic"`
	LearningType LearningType `json:"learningType"`
	TimeSpent    string       `json:"timeSpent"`
	Confidence   int          `json:"confidence"`
	ResourceLink string       `json:"resourceLink"`
	Notes        string       `json:"notes"`

	Date         *string `json:"date,omitempty"`
	EmployeeID   *string `json:"employeeId,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
}

func (r *SubmitLearningRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("topic", r.Topic)
	if !r.LearningType.IsValid() {
		errs.Add("learningType", "invalid learning type")
	}
	if r.Confidence < 1 || r.Confidence > 5 {
		errs.Add("confidence", "confidence must be between 1 and 5")
	}
	if !validator.IsEmpty(r.ResourceLink) && !validator.IsValidURL(r.ResourceLink) {
		errs.Add("resourceLink", "resourceLink must be an http(s) URL")
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

func (r SubmitLearningRequest) Build(id string, actor user.Identity, now time.Time) Entry {
	e := Entry{
		ID:           id,
		Date:         now.Format(clock.DateLayout),
		EmployeeID:   actor.ID,
		EmployeeName: actor.Name,
		Topic:        r.Topic,
		LearningType: r.LearningType,
		TimeSpent:    r.TimeSpent,
		Confidence:   r.Confidence,
		ResourceLink: r.ResourceLink,
		Notes:        r.Notes,
	}

	if r.Date != nil {
		e.Date = *r.Date
	}
	if r.EmployeeID != nil {
		e.EmployeeID = *r.EmployeeID
	}
	if r.EmployeeName != nil {
		e.EmployeeName = *r.EmployeeName
	}
	return e
}

// Summary is the learning board header for the acting user.
type Summary struct {
	Streak        int     `json:"streak"`
	TotalSessions int     `json:"totalSessions"`
	TotalHours    float64 `json:"totalHours"`
	AvgConfidence float64 `json:"avgConfidence"`
	Entries       []Entry `json:"entries"`
}
