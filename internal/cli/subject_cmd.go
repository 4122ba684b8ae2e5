package cli

import (
	"fmt"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subject",
		Aliases: []string{"subjects"},
		Short:   "Manage subjects and their exam dates",
	}

	cmd.AddCommand(
		newSubjectAddCmd(app),
		newSubjectListCmd(app),
		newSubjectShowCmd(app),
		newSubjectUpdateCmd(app),
		newSubjectRemoveCmd(app),
	)

	return cmd
}

func newSubjectAddCmd(app *App) *cobra.Command {
	var name, exam string
	var difficulty, preparedness, chapters int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a subject",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := &domain.Subject{
				Name:         name,
				Difficulty:   difficulty,
				Preparedness: preparedness,
				Chapters:     chapters,
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal on stdin")
				}
				if exam != "" {
					if t, err := parseDate(exam); err == nil {
						s.ExamDate = t
					}
				}
				v := newSubjectFormValues(s)
				if err := subjectForm(v).Run(); err != nil {
					return err
				}
				if err := v.apply(s); err != nil {
					return err
				}
			} else {
				if exam == "" {
					return fmt.Errorf("--exam is required (or use --interactive)")
				}
				t, err := parseDate(exam)
				if err != nil {
					return err
				}
				s.ExamDate = t
			}

			if err := app.Subjects.Add(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", s.Name, formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name (default \"Untitled\")")
	cmd.Flags().StringVar(&exam, "exam", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&difficulty, "difficulty", domain.DefaultDifficulty, "Difficulty 1-5")
	cmd.Flags().IntVar(&preparedness, "preparedness", domain.DefaultPreparedness, "Preparedness 1-5")
	cmd.Flags().IntVar(&chapters, "chapters", domain.DefaultChapters, "Chapters or topics left")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the subject in with a form")

	return cmd
}

func newSubjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(subjects) == 0 {
				fmt.Fprintln(out, "No subjects yet. Add one with `optistudy subject add` or load samples with `optistudy demo`.")
				return nil
			}
			fmt.Fprint(out, formatter.FormatSubjectList(subjects, app.now()))
			return nil
		},
	}
}

func newSubjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show SUBJECT",
		Short: "Show one subject with chapter progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			progress, err := app.Chapters.Progress(ctx, s.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSubjectDetail(s, progress, app.now()))
			return nil
		},
	}
}

func newSubjectUpdateCmd(app *App) *cobra.Command {
	var name, exam string
	var difficulty, preparedness, chapters int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "update SUBJECT",
		Short: "Change a subject's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal on stdin")
				}
				v := newSubjectFormValues(s)
				if err := subjectForm(v).Run(); err != nil {
					return err
				}
				if err := v.apply(s); err != nil {
					return err
				}
			} else {
				flags := cmd.Flags()
				if !flags.Changed("name") && !flags.Changed("exam") && !flags.Changed("difficulty") &&
					!flags.Changed("preparedness") && !flags.Changed("chapters") {
					return fmt.Errorf("nothing to update; pass at least one field flag")
				}
				if flags.Changed("name") {
					s.Name = name
				}
				if flags.Changed("exam") {
					if s.ExamDate, err = parseDate(exam); err != nil {
						return err
					}
				}
				if flags.Changed("difficulty") {
					s.Difficulty = difficulty
				}
				if flags.Changed("preparedness") {
					s.Preparedness = preparedness
				}
				if flags.Changed("chapters") {
					s.Chapters = chapters
				}
			}

			if err := app.Subjects.Update(ctx, s); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subject name")
	cmd.Flags().StringVar(&exam, "exam", "", "Exam date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty 1-5")
	cmd.Flags().IntVar(&preparedness, "preparedness", 0, "Preparedness 1-5")
	cmd.Flags().IntVar(&chapters, "chapters", 0, "Chapters or topics left")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Edit the subject with a form")

	return cmd
}

func newSubjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove SUBJECT",
		Aliases: []string{"rm"},
		Short:   "Delete a subject with its chapters and resources",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !yes && app.interactive() {
				confirmed := false
				if err := confirmForm(fmt.Sprintf("Delete %s and all its chapters?", s.Name), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}
			if err := app.Subjects.Remove(ctx, s.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", s.Name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newDemoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replace all subjects with the six-subject sample set",
		RunE: func(cmd *cobra.Command, args []string) error {
			subjects, err := app.Subjects.LoadDemo(cmd.Context(), app.now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded %d demo subjects (6h/day, 3h max per subject).\n\n", len(subjects))
			fmt.Fprint(out, formatter.FormatSubjectList(subjects, app.now()))
			return nil
		},
	}
}
