package domain

import "time"

// ScheduleRecord is a persisted snapshot of one generated allocation.
type ScheduleRecord struct {
	ID          string
	TotalHours  float64
	MinHours    float64
	MaxHours    float64
	Passes      int
	Infeasible  bool
	Warnings    []string
	Allocations []ScheduledSubject
	CreatedAt   time.Time
}

// ScheduledSubject is the stored form of a single allocation row.
type ScheduledSubject struct {
	SubjectID       string    `json:"subject_id"`
	Name            string    `json:"name"`
	ExamDate        time.Time `json:"exam_date"`
	Difficulty      int       `json:"difficulty"`
	Preparedness    int       `json:"preparedness"`
	Chapters        int       `json:"chapters"`
	DaysRemaining   int       `json:"days_remaining"`
	Urgency         float64   `json:"urgency"`
	WeaknessFactor  int       `json:"weakness_factor"`
	WorkloadFactor  int       `json:"workload_factor"`
	RawScore        float64   `json:"raw_score"`
	NormalizedScore float64   `json:"normalized_score"`
	Hours           float64   `json:"hours"`
	Locked          bool      `json:"locked"`
}
