package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
)

// ExamBadge renders the exam countdown in its urgency colour.
func ExamBadge(exam, today time.Time) string {
	label, level := insight.ExamBadge(exam, today)
	return UrgencyStyle(level).Render(label)
}

func FormatSubjectList(subjects []*domain.Subject, today time.Time) string {
	headers := []string{"ID", "SUBJECT", "EXAM", "", "DIFFICULTY", "PREP", "CHAPTERS"}
	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, []string{
			TruncID(s.ID),
			insight.SubjectIcon(s.Name) + " " + s.Name,
			s.ExamDate.Format("Jan 2, 2006"),
			ExamBadge(s.ExamDate, today),
			insight.DifficultyLabel(s.Difficulty),
			Rating(s.Preparedness),
			fmt.Sprintf("%d", s.Chapters),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSubjectDetail renders one subject with its chapter progress.
func FormatSubjectDetail(s *domain.Subject, progress domain.ChapterProgress, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", insight.SubjectIcon(s.Name), Bold(s.Name))
	fmt.Fprintf(&b, "  %-13s %s  %s\n", "Exam", s.ExamDate.Format("Mon Jan 2, 2006"), ExamBadge(s.ExamDate, today))
	fmt.Fprintf(&b, "  %-13s %s %s\n", "Difficulty", Rating(s.Difficulty), Dim(insight.DifficultyLabel(s.Difficulty)))
	fmt.Fprintf(&b, "  %-13s %s %s\n", "Preparedness", Rating(s.Preparedness),
		Dim(fmt.Sprintf("%d%%", insight.PreparednessPct(float64(s.Preparedness)))))
	fmt.Fprintf(&b, "  %-13s %d\n", "Chapters", s.Chapters)
	if progress.Total > 0 {
		fmt.Fprintf(&b, "  %-13s %s %s\n", "Progress", RenderProgress(progress.Pct()/100, 20),
			Dim(fmt.Sprintf("%d/%d done", progress.Done, progress.Total)))
	}
	fmt.Fprintf(&b, "  %-13s %s\n", "ID", Dim(s.ID))
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
