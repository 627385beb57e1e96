package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openlessons/bookd/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the content tree",
	Long: `Count pages, sections, quizzes, quiz questions, and fenced code
blocks per language across the content directory.

Examples:
  bookctl stats
  bookctl stats -c docs/book
  bookctl stats --json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Bool("json", false, "output stats as JSON")
}

type contentStats struct {
	Pages      int            `json:"pages"`
	Sections   int            `json:"sections"`
	Drafts     int            `json:"drafts"`
	Words      int            `json:"words"`
	Quizzes    int            `json:"quizzes"`
	Questions  int            `json:"questions"`
	CodeBlocks int            `json:"code_blocks"`
	Languages  map[string]int `json:"languages"`
}

func runStats(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	content := service.NewContentService(contentDir, "", true)
	pages, err := content.AllPages()
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	stats := contentStats{Languages: map[string]int{}}
	for _, page := range pages {
		if strings.HasSuffix(page.Path, "_index.md") {
			stats.Sections++
		} else {
			stats.Pages++
		}
		if page.Draft {
			stats.Drafts++
		}
		stats.Words += page.WordCount
		stats.Quizzes += len(page.Quizzes)
		for _, quiz := range page.Quizzes {
			stats.Questions += len(quiz.Questions)
		}
		stats.CodeBlocks += len(page.CodeBlocks)
		for _, block := range page.CodeBlocks {
			lang := block.Language
			if lang == "" {
				lang = "(none)"
			}
			stats.Languages[lang]++
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pages:       %d (%d sections, %d drafts)\n", stats.Pages, stats.Sections, stats.Drafts)
	fmt.Fprintf(out, "Words:       %d\n", stats.Words)
	fmt.Fprintf(out, "Quizzes:     %d (%d questions)\n", stats.Quizzes, stats.Questions)
	fmt.Fprintf(out, "Code blocks: %d\n", stats.CodeBlocks)

	if len(stats.Languages) > 0 {
		fmt.Fprintln(out)
		table := newTable(out, []string{"LANGUAGE", "BLOCKS"})
		for _, lang := range sortedKeys(stats.Languages) {
			table.AddRow([]string{lang, strconv.Itoa(stats.Languages[lang])})
		}
		table.Render()
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
