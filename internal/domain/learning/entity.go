package learning

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/clock"
)

type LearningType string

const (
	TypeCourse    LearningType = "course"
	TypePractice  LearningType = "practice"
	TypeReading   LearningType = "reading"
	TypeVideo     LearningType = "video"
	TypeMentoring LearningType = "mentoring"
)

var typeLabels = map[LearningType]string{
	TypeCourse:    "Online Course",
	TypePractice:  "Practice / Project",
	TypeReading:   "Reading / Article",
	TypeVideo:     "Video Tutorial",
	TypeMentoring: "Mentoring / Discussion",
}

func (t LearningType) IsValid() bool {
	_, ok := typeLabels[t]
	return ok
}

func (t LearningType) Label() string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// Entry is one logged learning session.
type Entry struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	EmployeeID   string       `json:"employeeId"`
	EmployeeName string       `json:"employeeName"`
	Topic        string       `json:"topic"`
	LearningType LearningType `json:"learningType"`
	TimeSpent    string       `json:"timeSpent"`
	Confidence   int          `json:"confidence"`
	ResourceLink string       `json:"resourceLink"`
	Notes        string       `json:"notes"`
}

// Hours reads the leading number of a free-text duration such as
// "2 hours" or "1.5h". Minute units ("45 mins") are converted. Anything
// unparseable counts as zero.
func Hours(timeSpent string) float64 {
	s := strings.TrimSpace(strings.ToLower(timeSpent))
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	if strings.HasPrefix(strings.TrimSpace(s[end:]), "m") {
		return v / 60
	}
	return v
}

// Streak counts consecutive days with an entry, walking back from today.
// No entry today means zero, whatever the history.
func Streak(entries []Entry, now time.Time) int {
	seen := make(map[string]struct{}, len(entries))
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Date]; dup {
			continue
		}
		seen[e.Date] = struct{}{}
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	check := now
	count := 0
	for _, d := range dates {
		if d != check.Format(clock.DateLayout) {
			break
		}
		count++
		check = check.AddDate(0, 0, -1)
	}
	return count
}
