package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func statsBook(t *testing.T) string {
	return writeBook(t, map[string]string{
		"guide/_index.md": `---
title: Guide
nav_weight: 1
---
`,
		"guide/lesson.md": `---
title: Lesson
description: A lesson with a quiz and code.
nav_weight: 1
---

# Lesson

` + "```js\nconsole.log(1);\n```\n\n```mermaid\ngraph TD;\n```\n" + `
{{< quizdown >}}

### One question?

1. [x] Yes
2. [ ] No

> **Explanation:** Just one.

{{< /quizdown >}}
`,
	})
}

func setupStatsTest(t *testing.T) {
	t.Helper()
	color.NoColor = true
	statsCmd.Flags().Set("json", "false")
}

func TestStats_Default(t *testing.T) {
	setupStatsTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "-c", statsBook(t)})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Pages:", "Quizzes:", "Code blocks: 2", "mermaid"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestStats_JSON(t *testing.T) {
	setupStatsTest(t)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"stats", "-c", statsBook(t), "--json"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats --json failed: %v", err)
	}

	var stats contentStats
	if err := json.Unmarshal(buf.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if stats.Pages != 1 {
		t.Errorf("expected 1 page, got %d", stats.Pages)
	}
	if stats.Sections != 1 {
		t.Errorf("expected 1 section, got %d", stats.Sections)
	}
	if stats.Quizzes != 1 || stats.Questions != 1 {
		t.Errorf("expected one quiz with one question, got %d/%d", stats.Quizzes, stats.Questions)
	}
	if stats.CodeBlocks != 2 {
		t.Errorf("expected 2 code blocks, got %d", stats.CodeBlocks)
	}
	if stats.Languages["js"] != 1 || stats.Languages["mermaid"] != 1 {
		t.Errorf("unexpected language counts: %v", stats.Languages)
	}
}
