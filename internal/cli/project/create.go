package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project. New projects land at the end of the TODO column
unless --state says otherwise.

Examples:
  # Due at the end of today
  pm project create --title="Thesis draft"

  # With description and deadline
  pm project create \
    --title="Thesis draft" \
    --description="Chapters 1-3, **markdown** welcome" \
    --deadline=2026-12-01

  # Quiet mode for bash capture
  PROJECT_ID=$(pm project create --title="Thesis draft" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Project title (empty titles show as Untitled)")
	cmd.Flags().String("description", "", "Project description (markdown, max 1000 characters)")
	cmd.Flags().String("deadline", "", "Deadline as YYYY-MM-DD (default: today)")
	cmd.Flags().String("state", models.StateToDo.String(), "Initial state: todo, doing or done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	deadlineFlag, _ := cmd.Flags().GetString("deadline")
	stateFlag, _ := cmd.Flags().GetString("state")

	formatter := cli.NewFormatter(cmd)

	state, err := models.ParseState(stateFlag)
	if err != nil {
		return cli.Fail(formatter, "INVALID_STATE", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cliInstance.CloseQuietly()

	now := cliInstance.App.Store().Now()
	deadline, err := cli.ParseDeadlineFlag(deadlineFlag, now)
	if err != nil {
		return cli.Fail(formatter, "INVALID_DEADLINE", err)
	}

	project, err := cliInstance.App.ProjectService.Save(ctx, projectservice.SaveRequest{
		Title:       title,
		Description: description,
		Deadline:    deadline,
		State:       &state,
	})
	if err != nil {
		return cli.Fail(formatter, "PROJECT_CREATE_ERROR", err)
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

	texts := project.Texts()
	formatter.Printf("✓ Project '%s' created in %s (ID: %s)\n", texts.Title, project.State.Title(), view.ID)
	formatter.Printf("  Deadline: %s\n", texts.Deadline)
	return nil
}
