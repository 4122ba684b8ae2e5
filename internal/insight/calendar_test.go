package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonth_GridSize(t *testing.T) {
	// March 2025 starts on a Saturday and needs six rows.
	march := BuildMonth(2025, time.March, nil, nil, time.Time{}, today)
	assert.Len(t, march.Days, 42)
	assert.False(t, march.Days[0].InMonth)
	assert.Equal(t, 23, march.Days[0].Date.Day(), "leading days come from February")
	assert.True(t, march.Days[6].InMonth)
	assert.Equal(t, 1, march.Days[6].Date.Day())
	assert.Len(t, march.Weeks(), 6)
	assert.Equal(t, "March 2025", march.Title())

	feb := BuildMonth(2025, time.February, nil, nil, time.Time{}, today)
	assert.Len(t, feb.Days, 35)

	june := BuildMonth(2025, time.June, nil, nil, time.Time{}, today)
	assert.Len(t, june.Days, 35)
	assert.True(t, june.Days[0].InMonth, "June 2025 starts on a Sunday")
}

func TestBuildMonth_MarksToday(t *testing.T) {
	m := BuildMonth(2025, time.March, nil, nil, time.Time{}, today)
	var todays []Day
	for _, d := range m.Days {
		if d.IsToday {
			todays = append(todays, d)
		}
	}
	require.Len(t, todays, 1)
	assert.Equal(t, 15, todays[0].Date.Day())
}

func TestBuildMonth_ExamAndStudyEvents(t *testing.T) {
	calc := subj("Calculus", 3, 5, 2)
	allocs := []domain.ScheduledSubject{
		{SubjectID: "Calculus", Name: "Calculus", ExamDate: calc.ExamDate, Hours: 2.4},
		{SubjectID: "Idle", Name: "Idle", ExamDate: examIn(5), Hours: 0},
	}

	m := BuildMonth(2025, time.March, []domain.Subject{calc}, allocs, examIn(0), today)

	for _, day := range []int{15, 16, 17} {
		ev := m.Events(time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC))
		require.Len(t, ev, 1, "day %d", day)
		assert.Equal(t, EventStudy, ev[0].Kind)
		assert.Equal(t, "Calculus · 2.4h", ev[0].Label())
	}

	exam := m.Events(time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC))
	require.Len(t, exam, 1)
	assert.Equal(t, EventExam, exam[0].Kind)
	assert.Equal(t, "📝 Calculus Exam", exam[0].Label())

	assert.Empty(t, m.Events(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, m.Events(time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)))
}

func TestDay_VisibleCapsAtThree(t *testing.T) {
	var subjects []domain.Subject
	for i := 0; i < 5; i++ {
		s := subj(fmt.Sprintf("S%d", i), 2, 3, 3)
		subjects = append(subjects, s)
	}
	m := BuildMonth(2025, time.March, subjects, nil, time.Time{}, today)

	var examDay Day
	for _, d := range m.Days {
		if d.InMonth && d.Date.Day() == 17 {
			examDay = d
		}
	}
	visible, hidden := examDay.Visible()
	assert.Len(t, visible, MaxVisibleEvents)
	assert.Equal(t, 2, hidden)
}
