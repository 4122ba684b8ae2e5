package insight

import (
	"testing"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

func examIn(days int) time.Time {
	return time.Date(2025, 3, 15+days, 0, 0, 0, 0, time.UTC)
}

func subj(id string, days, diff, prep int) domain.Subject {
	return domain.Subject{ID: id, Name: id, ExamDate: examIn(days), Difficulty: diff, Preparedness: prep, Chapters: 4}
}

func TestNotifications_OrderAndRules(t *testing.T) {
	subjects := []domain.Subject{
		subj("Chem", 2, 5, 1),
		subj("Art", 20, 3, 3),
		subj("Bio", 0, 3, 3),
		subj("Hist", -3, 2, 4),
	}

	got := Notifications(subjects, today)
	require.Len(t, got, 5)

	assert.Equal(t, "Hist", got[0].SubjectName)
	assert.Equal(t, domain.NotifyUrgent, got[0].Kind)
	assert.Equal(t, "Hist exam was on Mar 12, 3 days ago!", got[0].Message)
	assert.Equal(t, "Overdue", got[0].When)

	assert.Equal(t, "Bio exam is TODAY!", got[1].Message)
	assert.Equal(t, float64(PriorityImminent), got[1].Priority)

	assert.Equal(t, "Chem", got[2].SubjectName)
	assert.Equal(t, PriorityHardAndWeak, got[2].Priority)
	assert.Equal(t, "2d left", got[2].When)

	assert.Equal(t, float64(PriorityWithin3Days), got[3].Priority)
	assert.Equal(t, domain.NotifyWarning, got[3].Kind)

	assert.Equal(t, float64(PriorityLowPrepared), got[4].Priority)
	assert.Contains(t, got[4].Message, "low preparedness (1/5)")
}

func TestNotifications_SingularDayAndTomorrow(t *testing.T) {
	got := Notifications([]domain.Subject{subj("Math", -1, 3, 3), subj("Geo", 1, 3, 3)}, today)
	require.Len(t, got, 2)
	assert.Equal(t, "Math exam was on Mar 14, 1 day ago!", got[0].Message)
	assert.Equal(t, "Geo exam is tomorrow!", got[1].Message)
}

func TestNotifications_WeekWindowIsInfo(t *testing.T) {
	got := Notifications([]domain.Subject{subj("Eng", 6, 1, 5)}, today)
	require.Len(t, got, 1)
	assert.Equal(t, domain.NotifyInfo, got[0].Kind)
	assert.Equal(t, "Eng exam coming up in 6 days", got[0].Message)
}

func TestNotifications_EqualPriorityKeepsInputOrder(t *testing.T) {
	got := Notifications([]domain.Subject{subj("B", 5, 3, 3), subj("A", 6, 3, 3)}, today)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].SubjectName)
	assert.Equal(t, "A", got[1].SubjectName)
}

func TestNotifications_NoneWhenFarAndPrepared(t *testing.T) {
	assert.Empty(t, Notifications([]domain.Subject{subj("Far", 30, 5, 1)}, today))
}
