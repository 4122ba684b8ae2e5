package contract

import (
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
)

// PlanRequest asks for a fresh allocation. Nil overrides fall back to the
// stored settings.
type PlanRequest struct {
	Now           *time.Time
	TotalHours    *float64
	MaxPerSubject *float64
	DryRun        bool
}

func NewPlanRequest() PlanRequest {
	return PlanRequest{}
}

type PlanResponse struct {
	ScheduleID     string
	GeneratedAt    time.Time
	TotalHours     float64
	AllocatedHours float64
	MinHours       float64
	MaxHours       float64
	Passes         int
	Infeasible     bool
	Allocations    []domain.ScheduledSubject
	Explanation    *insight.Explanation
	Warnings       []string
}
