package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask the study advisor a question",
		Long: "Answers questions about priorities, weak subjects, daily hours, exam tips,\n" +
			"the current schedule and motivation, using your saved subjects and plan.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := app.Advisor.Ask(cmd.Context(), strings.Join(args, " "), app.now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAnswer(answer))
			return nil
		},
	}
}

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the study advisor interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("chat needs a terminal; use `optistudy ask` instead")
			}
			return runChat(cmd.Context(), app)
		},
	}
}
