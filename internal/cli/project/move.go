package project

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// MoveCmd returns the project move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <id> <state>",
		Short: "Move a project to another state",
		Long: `Move a project to todo, doing or done. The project is appended to the end of
the target column. Moving to the state it is already in changes nothing.

Examples:
  pm project move 6f1c... doing
  pm project move 6f1c... done --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	id, err := cli.ParseProjectID(args[0])
	if err != nil {
		return cli.Fail(formatter, "INVALID_ID", err)
	}
	to, err := models.ParseState(args[1])
	if err != nil {
		return cli.Fail(formatter, "INVALID_STATE", err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cliInstance.CloseQuietly()

	before, err := cliInstance.App.ProjectService.Get(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	project, err := cliInstance.App.ProjectService.Move(ctx, id, to)
	if err != nil {
		return cli.Fail(formatter, "MOVE_ERROR", err)
	}

	if formatter.Quiet {
		formatter.Println(project.ID.String())
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":    true,
			"project_id": project.ID.String(),
			"from_state": before.State.String(),
			"to_state":   project.State.String(),
		})
	}

	title := project.Texts().Title
	if before.State == project.State {
		formatter.Printf("Project '%s' is already in %s\n", title, project.State.Title())
	} else {
		formatter.Printf("Project '%s' moved to %s\n", title, project.State.Title())
	}
	return nil
}
