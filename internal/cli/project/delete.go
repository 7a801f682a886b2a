package project

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
)

// DeleteCmd returns the project delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Long:  "Delete a project by ID (requires confirmation unless --force, --json or --quiet).",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
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

	// Get project details for confirmation
	project, err := cliInstance.App.ProjectService.Get(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Delete project '%s'? (y/N): ", project.Texts().Title)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if _, err := cliInstance.App.ProjectService.Remove(ctx, id); err != nil {
		return cli.Fail(formatter, "DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success":    true,
			"project_id": id.String(),
		})
	}

	formatter.Printf("✓ Project '%s' deleted\n", project.Texts().Title)
	return nil
}
