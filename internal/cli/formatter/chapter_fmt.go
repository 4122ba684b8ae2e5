package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
)

func FormatChapterList(subject *domain.Subject, chapters []*domain.Chapter) string {
	var b strings.Builder
	progress := domain.ProgressOf(chapters)
	fmt.Fprintf(&b, "%s %s  %s\n\n", insight.SubjectIcon(subject.Name), Bold(subject.Name),
		RenderProgress(progress.Pct()/100, 16))

	rows := make([][]string, 0, len(chapters))
	for _, ch := range chapters {
		notes := ""
		if ch.Notes != "" {
			notes = "📝"
		}
		rows = append(rows, []string{
			TruncID(ch.ID),
			fmt.Sprintf("%d", ch.Number),
			ch.Name,
			ChapterStatusPill(ch.Status),
			FormatMinutes(ch.TimeSpentMin),
			notes,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "#", "CHAPTER", "STATUS", "TIME", ""}, rows))
	return b.String()
}

func FormatResourceList(resources []*domain.Resource) string {
	if len(resources) == 0 {
		return Dim("No resources yet.") + "\n"
	}
	var b strings.Builder
	for _, r := range resources {
		target := r.URL
		if r.FilePath != "" {
			target = r.FilePath
		}
		fmt.Fprintf(&b, "%s %s %s\n", insight.ResourceIcon(r.Type), r.Title, TruncID(r.ID))
		if target != "" {
			fmt.Fprintf(&b, "   %s\n", Dim(target))
		}
	}
	return b.String()
}
