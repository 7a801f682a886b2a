package project

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/cli"
	"github.com/thenoetrevino/projectmanager/internal/cli/styles"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show project details",
		Long:  "Display a project with its state, deadline and markdown-rendered description.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	project, err := cliInstance.App.ProjectService.Get(ctx, id)
	if err != nil {
		return cli.Fail(formatter, "PROJECT_FETCH_ERROR", err)
	}

	view := converters.ProjectToView(project, cliInstance.App.Store().Now())

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

	formatter.Println(renderProjectCard(project, view))
	return nil
}

// renderProjectCard builds the bordered human-readable project view
func renderProjectCard(project models.Project, view converters.ProjectView) string {
	texts := project.Texts()

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render(texts.Title))
	content.WriteString("\n\n")
	content.WriteString(styles.Field("State", project.State.Title()))
	content.WriteString("\n")

	deadline := styles.Field("Deadline", texts.Deadline)
	if view.Overdue {
		deadline += " " + styles.OverdueStyle.Render("OVERDUE")
	}
	content.WriteString(deadline)
	content.WriteString("\n")
	content.WriteString(styles.Field("ID", view.ID))
	content.WriteString("\n")

	content.WriteString(styles.SectionStyle.Render("Description"))
	content.WriteString("\n")
	if project.Description == "" {
		content.WriteString(styles.SubtitleStyle.Render(models.NoDescriptionPlaceholder))
	} else {
		content.WriteString(renderMarkdown(project.Description, styles.CardWidth-6))
	}

	return styles.RenderCard(content.String())
}
