package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/service"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Print the navigation tree",
	Long: `Print the book's navigation tree in reading order.

Pages are ordered by nav_weight, then title. Sections come from
_index.md files. Drafts are shown when --drafts is set.

Examples:
  bookctl nav                  # Tree for ./content
  bookctl nav -c docs/book     # Tree for another directory
  bookctl nav --json           # Machine-readable tree`,
	RunE: runNav,
}

func init() {
	rootCmd.AddCommand(navCmd)

	navCmd.Flags().Bool("json", false, "output tree as JSON")
	navCmd.Flags().Bool("drafts", false, "include draft pages")
}

type navEntry struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	NavWeight int        `json:"nav_weight"`
	Section   bool       `json:"section,omitempty"`
	Children  []navEntry `json:"children,omitempty"`
}

func runNav(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	drafts, _ := cmd.Flags().GetBool("drafts")

	content := service.NewContentService(contentDir, "", drafts)
	tree, err := content.Tree()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toNavEntries(tree))
	}

	out := cmd.OutOrStdout()
	for _, child := range tree.Children {
		printNavNode(out, child, 0)
	}
	return nil
}

func toNavEntries(node *model.Page) []navEntry {
	entries := make([]navEntry, 0, len(node.Children))
	for _, child := range node.Children {
		entries = append(entries, navEntry{
			Slug:      child.Slug,
			Title:     child.NavLabel(),
			NavWeight: child.NavWeight,
			Section:   child.IsSection(),
			Children:  toNavEntries(child),
		})
	}
	return entries
}

func printNavNode(out io.Writer, node *model.Page, depth int) {
	indent := strings.Repeat("  ", depth)
	label := node.NavLabel()
	if node.IsSection() {
		label = color.CyanString(label)
	}
	fmt.Fprintf(out, "%s%s  %s\n", indent, label, color.New(color.Faint).Sprintf("(%s)", node.Slug))
	for _, child := range node.Children {
		printNavNode(out, child, depth+1)
	}
}
