package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/service"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check content integrity",
	Long: `Lint every Markdown document in the content directory.

Checks that front-matter is well-formed YAML with the required fields,
that every fenced code block carries a language tag, and that every
quizdown block has complete question/answer/explanation triplets.

Examples:
  bookctl lint                 # Lint ./content
  bookctl lint -c docs/book    # Lint another directory
  bookctl lint --strict        # Warnings fail the run
  bookctl lint --json          # Machine-readable report`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().Bool("strict", false, "treat warnings as errors")
	lintCmd.Flags().Bool("json", false, "output report as JSON")
	lintCmd.Flags().String("license", "", "site-wide license applied when front-matter omits one")
}

func runLint(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	license, _ := cmd.Flags().GetString("license")

	content := service.NewContentService(contentDir, license, true)
	lint := service.NewLintService(content, nil, strict)

	report, err := lint.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(cmd, report)
	}

	if !report.Clean() {
		return fmt.Errorf("lint found %d error(s) in %d page(s)", report.Errors, report.Pages)
	}
	return nil
}

func printReport(cmd *cobra.Command, report *model.LintReport) {
	out := cmd.OutOrStdout()

	if len(report.Issues) == 0 {
		fmt.Fprintf(out, "%s %d pages checked, no issues\n", color.GreenString("ok:"), report.Pages)
		return
	}

	table := newTable(out, []string{"LOCATION", "SEVERITY", "RULE", "MESSAGE"})
	for _, issue := range report.Issues {
		location := issue.Path
		if issue.Line > 0 {
			location += ":" + strconv.Itoa(issue.Line)
		}
		table.AddRow([]string{location, severityLabel(issue.Severity), issue.Rule, issue.Message})
	}
	table.Render()

	fmt.Fprintf(out, "\n%d pages checked: %s, %s\n",
		report.Pages,
		color.RedString("%d error(s)", report.Errors),
		color.YellowString("%d warning(s)", report.Warnings),
	)
}

func severityLabel(severity string) string {
	if severity == model.SeverityError {
		return color.RedString(severity)
	}
	return color.YellowString(severity)
}
