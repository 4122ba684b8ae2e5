package contract

import (
	"time"

	"github.com/alexanderramin/optistudy/internal/insight"
)

type DashboardRequest struct {
	Now *time.Time
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{}
}

// PrepBar is one row of the preparedness chart.
type PrepBar struct {
	SubjectName string
	Pct         int
}

type DashboardResponse struct {
	GeneratedAt        time.Time
	SubjectCount       int
	NextExamDays       *int // nil when every exam has passed
	ExamsWithin30Days  int
	AvgPreparednessPct int
	PrepBars           []PrepBar
	TotalHours         float64
	WeeklyHours        float64
	HasSchedule        bool
	Today              []insight.TimeBlock
	TodayDone          int
	Notifications      []insight.Notification
}
