package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/alexanderramin/optistudy/internal/domain"
	"github.com/alexanderramin/optistudy/internal/insight"
	"github.com/spf13/cobra"
)

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "resource",
		Aliases: []string{"res"},
		Short:   "Attach links, videos, PDFs and notes to chapters",
	}

	cmd.AddCommand(
		newResourceAddCmd(app),
		newResourceListCmd(app),
		newResourceRemoveCmd(app),
	)

	return cmd
}

func newResourceAddCmd(app *App) *cobra.Command {
	var title, url, typ, file string

	cmd := &cobra.Command{
		Use:   "add SUBJECT NUMBER",
		Short: "Attach a resource to a chapter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			r := &domain.Resource{
				ChapterID: ch.ID,
				Title:     title,
				URL:       url,
				Type:      domain.ResourceType(typ),
				FilePath:  file,
			}
			if file != "" && typ == "" {
				r.Type = domain.ResourcePDF
			}
			if err := app.Resources.Add(ctx, r); err != nil {
				return err
			}
			size := ""
			if file != "" {
				if info, err := os.Stat(file); err == nil {
					size = " (" + insight.FormatFileSize(info.Size()) + ")"
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s%s to chapter %d %s\n", r.Title, size, ch.Number, formatter.TruncID(r.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Resource title")
	cmd.Flags().StringVar(&url, "url", "", "Link target")
	cmd.Flags().StringVar(&typ, "type", "", "link, video, pdf or note (default link)")
	cmd.Flags().StringVar(&file, "file", "", "Local PDF path")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newResourceListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list SUBJECT NUMBER",
		Short: "List a chapter's resources, newest first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			resources, err := app.Resources.List(ctx, ch.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatResourceList(resources))
			return nil
		},
	}
}

func newResourceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SUBJECT NUMBER ID",
		Aliases: []string{"rm"},
		Short:   "Delete a resource by ID prefix",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, ch, err := resolveChapter(ctx, app, args[0], args[1])
			if err != nil {
				return err
			}
			r, err := resolveResource(ctx, app, ch.ID, args[2])
			if err != nil {
				return err
			}
			if err := app.Resources.Remove(ctx, r.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", r.Title)
			return nil
		},
	}
}
