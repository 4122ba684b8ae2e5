package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

// huhTheme applies the formatter palette to huh forms.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// subjectFormValues is the string-typed state a subject form edits.
type subjectFormValues struct {
	Name         string
	Exam         string
	Difficulty   int
	Preparedness int
	Chapters     string
}

func newSubjectFormValues(s *domain.Subject) *subjectFormValues {
	v := &subjectFormValues{
		Name:         s.Name,
		Difficulty:   s.Difficulty,
		Preparedness: s.Preparedness,
		Chapters:     strconv.Itoa(s.Chapters),
	}
	if !s.ExamDate.IsZero() {
		v.Exam = s.ExamDate.Format(dateLayout)
	}
	return v
}

// apply copies validated form values onto s.
func (v *subjectFormValues) apply(s *domain.Subject) error {
	exam, err := parseDate(v.Exam)
	if err != nil {
		return err
	}
	chapters := 0
	if strings.TrimSpace(v.Chapters) != "" {
		if chapters, err = strconv.Atoi(strings.TrimSpace(v.Chapters)); err != nil {
			return fmt.Errorf("chapters: %w", err)
		}
	}
	s.Name = v.Name
	s.ExamDate = exam
	s.Difficulty = v.Difficulty
	s.Preparedness = v.Preparedness
	s.Chapters = chapters
	return nil
}

func ratingOptions(labels func(int) string) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, domain.MaxRating)
	for i := domain.MinRating; i <= domain.MaxRating; i++ {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d · %s", i, labels(i)), i))
	}
	return opts
}

var preparednessLabels = [...]string{"Not started", "Shaky", "Okay", "Solid", "Exam-ready"}

// subjectForm collects every subject field in one group.
func subjectForm(v *subjectFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("e.g. Calculus").
				Value(&v.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD)").
				Placeholder(time.Now().AddDate(0, 0, 7).Format(dateLayout)).
				Value(&v.Exam).
				Validate(validateDate),
			huh.NewSelect[int]().
				Title("Difficulty").
				Options(ratingOptions(insight.DifficultyLabel)...).
				Value(&v.Difficulty),
			huh.NewSelect[int]().
				Title("Preparedness").
				Options(ratingOptions(func(i int) string { return preparednessLabels[i-1] })...).
				Value(&v.Preparedness),
			huh.NewInput().
				Title("Chapters left").
				Placeholder("5").
				Value(&v.Chapters).
				Validate(validateNonNegativeInt),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

// confirmForm is a yes/no prompt.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := parseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// parseDate reads a YYYY-MM-DD date as UTC midnight.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}
