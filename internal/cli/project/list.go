package project

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/cli/styles"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects by state",
		Long: `List the board: the TODO, DOING and DONE columns in order, each with its
project count. Overdue projects are marked with '!'.

Examples:
  pm project list
  pm project list --state doing
  pm project list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("state", "", "Only list one state: todo, doing or done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	stateFlag, _ := cmd.Flags().GetString("state")
	formatter := cli.NewFormatter(cmd)

	states := models.States()
	if stateFlag != "" {
		state, err := models.ParseState(stateFlag)
		if err != nil {
			return cli.Fail(formatter, "INVALID_STATE", err)
		}
		states = []models.State{state}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Fail(formatter, "INITIALIZATION_ERROR", err)
	}
	defer cliInstance.CloseQuietly()

	board, err := cliInstance.App.ProjectService.Board(ctx)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	columns := make([]converters.ColumnView, 0, len(states))
	for _, state := range states {
		columns = append(columns, converters.ColumnToView(board.Column(state)))
	}

	if formatter.Quiet {
		for _, column := range columns {
			for _, p := range column.Projects {
				formatter.Println(p.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.WriteJSON(map[string]any{
			"success": true,
			"columns": columns,
		})
	}

	for i, column := range columns {
		if i > 0 {
			formatter.Println()
		}
		formatter.Println(styles.HeaderStyle.Render(fmt.Sprintf("%s (%s)", column.Title, column.DisplayCount)))
		if len(column.Projects) == 0 {
			formatter.Println(styles.SubtitleStyle.Render("  (empty)"))
			continue
		}
		for _, p := range column.Projects {
			formatter.Println(formatListLine(p))
		}
	}
	return nil
}

// formatListLine renders one project row: marker, title, deadline and id
func formatListLine(p converters.ProjectView) string {
	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = models.UntitledPlaceholder
	}

	marker := " "
	deadline := styles.SubtitleStyle.Render(p.Deadline)
	if p.Overdue {
		marker = styles.OverdueStyle.Render("!")
		deadline = styles.OverdueStyle.Render(p.Deadline + " overdue")
	}

	return fmt.Sprintf(" %s %s  %s  %s", marker, styles.TitleStyle.Render(title), deadline,
		styles.SubtitleStyle.Render(p.ID))
}
