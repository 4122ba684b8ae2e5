package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
)

// AllocatorConfig holds the constants that shape the clamp-and-redistribute
// heuristic. The defaults reproduce the dashboard's documented behavior.
type AllocatorConfig struct {
	MinHours        float64 // per-subject floor
	MaxShareOfTotal float64 // per-subject cap as a fraction of the daily budget
	MaxPasses       int     // redistribution passes before giving up
	Tolerance       float64 // allowed drift between total and allocated hours
}

func DefaultAllocatorConfig() AllocatorConfig {
	return AllocatorConfig{
		MinHours:        0.5,
		MaxShareOfTotal: 0.4,
		MaxPasses:       10,
		Tolerance:       0.01,
	}
}

// Allocation is one subject's share of the daily budget.
type Allocation struct {
	Subject domain.Subject
	SubjectScore
	NormalizedScore float64
	Hours           float64
	Locked          bool
}

// Plan is the immutable result of a single allocation run.
type Plan struct {
	GeneratedFor time.Time
	TotalHours   float64
	MinHours     float64
	MaxHours     float64
	Passes       int

	// Infeasible is set when MinHours for every subject exceeds the budget;
	// the allocation is still produced on a best-effort basis.
	Infeasible bool

	// OverflowSubjectID names the subject that absorbed the residual above
	// MaxHours because no unlocked subject was left to take it.
	OverflowSubjectID string

	Allocations []Allocation
}

// AllocatedHours sums hours across all allocations.
func (p *Plan) AllocatedHours() float64 {
	var sum float64
	for _, a := range p.Allocations {
		sum += a.Hours
	}
	return sum
}

type Allocator struct {
	Config  AllocatorConfig
	Weights ScoringWeights
}

func NewAllocator() *Allocator {
	return &Allocator{
		Config:  DefaultAllocatorConfig(),
		Weights: DefaultWeights(),
	}
}

// Allocate runs the default allocator.
func Allocate(subjects []domain.Subject, totalHours, userMaxPerSubject float64, today time.Time) (*Plan, error) {
	return NewAllocator().Allocate(subjects, totalHours, userMaxPerSubject, today)
}

// Allocate distributes totalHours across subjects in proportion to their
// raw scores, clamping each share to [MinHours, MaxHours] and locking
// clamped subjects out of later passes. A userMaxPerSubject of zero means
// no user cap, and negative or NaN caps are treated as unset too rather
// than rejected. The input slice is never modified.
func (a *Allocator) Allocate(subjects []domain.Subject, totalHours, userMaxPerSubject float64, today time.Time) (*Plan, error) {
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}
	if totalHours <= 0 || math.IsNaN(totalHours) || math.IsInf(totalHours, 0) {
		return nil, ErrInvalidTotalHours
	}

	cfg := a.Config
	allocs := make([]Allocation, len(subjects))
	var totalScore float64
	for i, s := range subjects {
		allocs[i] = Allocation{Subject: s, SubjectScore: ScoreSubjectWith(a.Weights, s, today)}
		totalScore += allocs[i].RawScore
	}
	for i := range allocs {
		allocs[i].NormalizedScore = allocs[i].RawScore / totalScore
	}

	if userMaxPerSubject <= 0 || math.IsNaN(userMaxPerSubject) {
		userMaxPerSubject = totalHours * cfg.MaxShareOfTotal
	}
	minHours := cfg.MinHours
	maxHours := math.Min(totalHours*cfg.MaxShareOfTotal, userMaxPerSubject)

	plan := &Plan{
		GeneratedFor: today,
		TotalHours:   totalHours,
		MinHours:     minHours,
		MaxHours:     maxHours,
		Infeasible:   minHours*float64(len(subjects)) > totalHours,
	}

	remaining := totalHours
	for pass := 0; pass < cfg.MaxPasses; pass++ {
		unlocked := unlockedIndexes(allocs)
		uSum := rawScoreSum(allocs, unlocked)
		if uSum == 0 || len(unlocked) == 0 {
			break
		}
		plan.Passes++

		for _, i := range unlocked {
			allocs[i].Hours = (allocs[i].RawScore / uSum) * remaining
		}

		changed := false
		for i := range allocs {
			if allocs[i].Locked {
				continue
			}
			if allocs[i].Hours < minHours {
				allocs[i].Hours = minHours
				allocs[i].Locked = true
				changed = true
			} else if allocs[i].Hours > maxHours {
				allocs[i].Hours = maxHours
				allocs[i].Locked = true
				changed = true
			}
		}
		if !changed {
			break
		}

		var lockedSum float64
		for _, al := range allocs {
			if al.Locked {
				lockedSum += al.Hours
			}
		}
		remaining = totalHours - lockedSum
		if remaining <= 0 {
			break
		}
	}

	a.correctResidual(plan, allocs)

	for i := range allocs {
		allocs[i].Hours = math.Max(0, allocs[i].Hours)
	}
	SortByHours(allocs)

	plan.Allocations = allocs
	return plan, nil
}

// correctResidual reconciles drift between the allocated sum and the
// budget. With nothing unlocked, the whole residual lands on the
// highest-scoring subject even if that pushes it past MaxHours.
func (a *Allocator) correctResidual(plan *Plan, allocs []Allocation) {
	var curSum float64
	for _, al := range allocs {
		curSum += al.Hours
	}
	if math.Abs(curSum-plan.TotalHours) <= a.Config.Tolerance {
		return
	}

	diff := plan.TotalHours - curSum
	unlocked := unlockedIndexes(allocs)
	if len(unlocked) > 0 {
		uSum := rawScoreSum(allocs, unlocked)
		for _, i := range unlocked {
			allocs[i].Hours += diff * (allocs[i].RawScore / uSum)
		}
		return
	}

	sortByRawScore(allocs)
	allocs[0].Hours += diff
	if allocs[0].Hours > plan.MaxHours+a.Config.Tolerance {
		plan.OverflowSubjectID = allocs[0].Subject.ID
	}
}

func unlockedIndexes(allocs []Allocation) []int {
	idx := make([]int, 0, len(allocs))
	for i, al := range allocs {
		if !al.Locked {
			idx = append(idx, i)
		}
	}
	return idx
}

func rawScoreSum(allocs []Allocation, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += allocs[i].RawScore
	}
	return sum
}
