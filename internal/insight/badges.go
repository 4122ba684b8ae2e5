package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/samber/lo"
)

type iconRule struct {
	keys []string
	icon string
}

var iconRules = []iconRule{
	{[]string{"math", "calc", "algebra"}, "📐"},
	{[]string{"phys"}, "⚛️"},
	{[]string{"chem"}, "🧪"},
	{[]string{"bio"}, "🧬"},
	{[]string{"hist", "gov"}, "🏛️"},
	{[]string{"eng", "lit"}, "📚"},
	{[]string{"comp", "code", "cs"}, "💻"},
	{[]string{"geo"}, "🌍"},
	{[]string{"art", "music"}, "🎨"},
	{[]string{"econ", "fin"}, "📈"},
}

// SubjectIcon picks an icon from the first keyword the name contains.
func SubjectIcon(name string) string {
	n := strings.ToLower(name)
	rule, ok := lo.Find(iconRules, func(r iconRule) bool {
		return lo.ContainsBy(r.keys, func(k string) bool { return strings.Contains(n, k) })
	})
	if !ok {
		return "📓"
	}
	return rule.icon
}

var difficultyLabels = [...]string{"Easy", "Medium", "Hard", "Expert", "Nightmare"}

// DifficultyLabel names a 1-5 difficulty; out-of-range values read as Medium.
func DifficultyLabel(d int) string {
	if d < 1 || d > len(difficultyLabels) {
		return "Medium"
	}
	return difficultyLabels[d-1]
}

// ExamBadge describes how close an exam is.
func ExamBadge(exam, today time.Time) (string, domain.UrgencyLevel) {
	if exam.IsZero() {
		return "No exam date", domain.UrgencySafe
	}
	diff := domain.CalendarDaysBetween(today, exam)
	switch {
	case diff < 0:
		return "Exam passed", domain.UrgencySafe
	case diff == 0:
		return "Exam TODAY!", domain.UrgencyUrgent
	case diff == 1:
		return "Exam Tomorrow!", domain.UrgencyUrgent
	case diff <= 3:
		return fmt.Sprintf("Exam in %d days", diff), domain.UrgencyUrgent
	case diff <= 7:
		return fmt.Sprintf("Exam in %d days", diff), domain.UrgencyModerate
	default:
		return fmt.Sprintf("Exam in %d days", diff), domain.UrgencySafe
	}
}

var resourceIcons = map[domain.ResourceType]string{
	domain.ResourceLink:  "🔗",
	domain.ResourceVideo: "🎥",
	domain.ResourcePDF:   "📄",
	domain.ResourceNote:  "📝",
}

func ResourceIcon(t domain.ResourceType) string {
	if icon, ok := resourceIcons[t]; ok {
		return icon
	}
	return "🔗"
}

// FormatFileSize renders a byte count as B, KB or MB.
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1048576:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/1048576)
	}
}

// PreparednessPct maps a 1-5 rating onto a rounded percentage.
func PreparednessPct(p float64) int {
	return int(p/float64(domain.MaxRating)*100 + 0.5)
}
