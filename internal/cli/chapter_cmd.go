package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChapterCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "chapter",
		Aliases: []string{"ch"},
		Short:   "Track chapters within a subject",
	}

	cmd.AddCommand(
		newChapterListCmd(app),
		newChapterAddCmd(app),
		newChapterRenameCmd(app),
		newChapterStatusCmd(app),
		newChapterNotesCmd(app),
		newChapterLogCmd(app),
		newChapterRemoveCmd(app),
		newChapterFocusCmd(app),
	)

	return cmd
}

func newChapterListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list SUBJECT",
		Short: "List a subject's chapters, generating them on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			chapters, err := app.Chapters.List(ctx, s.ID)
			if err != nil {
				return err
			}
			if len(chapters) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no chapters. Add one with `optistudy chapter add`.\n", s.Name)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChapterList(s, chapters))
			return nil
		},
	}
}

func newChapterAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add SUBJECT [NAME...]",
		Short: "Append a chapter",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := resolveSubject(ctx, app, args[0])
			if err != nil {
				return err
			}
			ch, err := app.Chapters.Add(ctx, s.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added chapter %d: %s\n", ch.Number, ch.Name)
			return nil
		},
	}
}

func newChapterRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename SUBJECT NUMBER NAME...",
		Short: "Rename a chapter",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			name := strings.Join(args[2:], " ")
			if err := app.Chapters.Rename(ctx, ch.ID, name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chapter %d renamed to %s\n", ch.Number, strings.TrimSpace(name))
			return nil
		},
	}
}

func newChapterStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "status SUBJECT NUMBER not_started|in_progress|completed",
		Short:     "Set a chapter's status",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{string(domain.ChapterNotStarted), string(domain.ChapterInProgress), string(domain.ChapterCompleted)},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			status := domain.ChapterStatus(strings.ReplaceAll(strings.ToLower(args[2]), "-", "_"))
			if err := app.Chapters.SetStatus(ctx, ch.ID, status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Chapter %d: %s\n", ch.Number, formatter.ChapterStatusPill(status))
			return nil
		},
	}
}

func newChapterNotesCmd(app *App) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "notes SUBJECT NUMBER [TEXT...]",
		Short: "Show or replace a chapter's notes",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 2 && !clear {
				if ch.Notes == "" {
					fmt.Fprintln(out, formatter.Dim("No notes."))
				} else {
					fmt.Fprintln(out, ch.Notes)
				}
				return nil
			}
			notes := strings.Join(args[2:], " ")
			if err := app.Chapters.SetNotes(ctx, ch.ID, notes); err != nil {
				return err
			}
			fmt.Fprintf(out, "Notes saved for chapter %d\n", ch.Number)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "Erase the notes")
	return cmd
}

func newChapterLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log SUBJECT NUMBER MINUTES",
		Short: "Record study time on a chapter",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			minutes, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("minutes must be a whole number, got %q", args[2])
			}
			if err := app.Chapters.LogMinutes(ctx, ch.ID, minutes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on chapter %d (%s total)\n",
				formatter.FormatMinutes(minutes), ch.Number, formatter.FormatMinutes(ch.TimeSpentMin+minutes))
			return nil
		},
	}
}

func newChapterRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SUBJECT NUMBER",
		Aliases: []string{"rm"},
		Short:   "Delete a chapter and its resources",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if err := app.Chapters.Remove(ctx, ch.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed chapter %d: %s\n", ch.Number, ch.Name)
			return nil
		},
	}
}

func newChapterFocusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "focus SUBJECT NUMBER",
		Short: "Run a stopwatch and log the session to the chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("focus needs a terminal; use `optistudy chapter log` instead")
			}

			final, err := tea.NewProgram(newFocusModel(s.Name, ch.Name)).Run()
			if err != nil {
				return err
			}
			m := final.(focusModel)
			out := cmd.OutOrStdout()
			minutes := m.Minutes()
			if m.cancelled || minutes == 0 {
				fmt.Fprintln(out, "Session discarded.")
				return nil
			}
			if err := app.Chapters.LogMinutes(ctx, ch.ID, minutes); err != nil {
				return err
			}
			fmt.Fprintf(out, "Logged %s on %s · %s\n", formatter.FormatMinutes(minutes), s.Name, ch.Name)
			return nil
		},
	}
}
