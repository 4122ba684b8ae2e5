package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
)

const msPerDay = 1000 * 60 * 60 * 24

// ScoreFloor keeps every subject's weight strictly positive so that
// normalization never divides by zero.
const ScoreFloor = 0.01

type ScoringWeights struct {
	Urgency  float64
	Weakness float64
	Workload float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		Urgency:  0.5,
		Weakness: 0.3,
		Workload: 0.2,
	}
}

// Validate checks that weights are non-negative and sum to 1.0 (±0.001).
func (w ScoringWeights) Validate() error {
	if w.Urgency < 0 || w.Weakness < 0 || w.Workload < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}
	if sum := w.Urgency + w.Weakness + w.Workload; math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

type FactorCode string

const (
	FactorUrgency  FactorCode = "URGENCY"
	FactorWeakness FactorCode = "WEAKNESS"
	FactorWorkload FactorCode = "WORKLOAD"
)

// Factor is one weighted term of a subject's raw score.
type Factor struct {
	Code         FactorCode
	Value        float64
	Contribution float64
}

// SubjectScore carries the derived fields computed while scoring a subject.
type SubjectScore struct {
	DaysRemaining  int
	Urgency        float64
	WeaknessFactor int
	WorkloadFactor int
	RawScore       float64
	Factors        []Factor
}

// DaysRemaining rounds the exam distance up to whole days, so a partial
// day counts as a full one. Past and same-day exams clamp to 1.
func DaysRemaining(examDate, today time.Time) int {
	diffMs := examDate.Sub(today).Milliseconds()
	days := int(math.Ceil(float64(diffMs) / msPerDay))
	if days < 1 {
		days = 1
	}
	return days
}

// ScoreSubject scores a subject with the default weights.
func ScoreSubject(s domain.Subject, today time.Time) SubjectScore {
	return ScoreSubjectWith(DefaultWeights(), s, today)
}

// ScoreSubjectWith computes the priority score of a subject. Ratings are
// not range-checked here; out-of-range input yields out-of-range factors.
func ScoreSubjectWith(w ScoringWeights, s domain.Subject, today time.Time) SubjectScore {
	days := DaysRemaining(s.ExamDate, today)
	result := SubjectScore{
		DaysRemaining:  days,
		Urgency:        1 / float64(days),
		WeaknessFactor: s.Difficulty - s.Preparedness,
		WorkloadFactor: s.Chapters,
	}

	result.Factors = []Factor{
		{Code: FactorUrgency, Value: result.Urgency, Contribution: result.Urgency * w.Urgency},
		{Code: FactorWeakness, Value: float64(result.WeaknessFactor), Contribution: float64(result.WeaknessFactor) * w.Weakness},
		{Code: FactorWorkload, Value: float64(result.WorkloadFactor), Contribution: float64(result.WorkloadFactor) * w.Workload},
	}

	var score float64
	for _, f := range result.Factors {
		score += f.Contribution
	}
	result.RawScore = math.Max(ScoreFloor, score)
	return result
}
