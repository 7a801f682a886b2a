package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project's title, description or deadline",
		Long: `Update a project in place. Only the flags given are changed; the project
keeps its state and its position in the column.

Examples:
  pm project update 6f1c... --title="Thesis final"
  pm project update 6f1c... --deadline=2026-12-15 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description (markdown, max 1000 characters)")
	cmd.Flags().String("deadline", "", "New deadline as YYYY-MM-DD")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseProjectID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cliInstance.CloseQuietly()

	existing, err := cliInstance.App.ProjectService.Get(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	req := projectservice.SaveRequest{
		ID:          &id,
		Title:       existing.Title,
		Description: existing.Description,
		Deadline:    existing.Deadline,
	}
	if cmd.Flags().Changed("title") {
		req.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("description") {
		req.Description, _ = cmd.Flags().GetString("description")
	}

	now := cliInstance.App.Store().Now()
	if cmd.Flags().Changed("deadline") {
		value, _ := cmd.Flags().GetString("deadline")
		req.Deadline, err = cli.ParseDeadlineFlag(value, now)
		if err != nil {
			return cli.Fail(formatter, "INVALID_DEADLINE", err)
		}
	}

	project, err := cliInstance.App.ProjectService.Save(ctx, req)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_UPDATE_ERROR", err)
	}

	view := converters.ProjectToView(project, now)

	if formatter.Quiet {
		formatter.Println(view.ID)
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"project": view,
		})
	}

	formatter.Printf("✓ Project '%s' updated\n", project.Texts().Title)
	return nil
}
