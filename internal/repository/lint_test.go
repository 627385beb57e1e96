package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlessons/bookd/internal/model"
)

func testReport(errors, warnings int) *model.LintReport {
	report := &model.LintReport{
		RunID:      uuid.NewString(),
		StartedAt:  time.Now().UTC().Add(-time.Second),
		FinishedAt: time.Now().UTC(),
		Pages:      5,
		Errors:     errors,
		Warnings:   warnings,
	}

	for i := 0; i < errors; i++ {
		report.Issues = append(report.Issues, model.LintIssue{
			RunID:    report.RunID,
			Path:     "guide/page.md",
			Line:     i + 1,
			Rule:     model.RuleCodeLanguageTag,
			Severity: model.SeverityError,
			Message:  "fenced code block has no language tag",
		})
	}
	for i := 0; i < warnings; i++ {
		report.Issues = append(report.Issues, model.LintIssue{
			RunID:    report.RunID,
			Path:     "guide/other.md",
			Line:     1,
			Rule:     model.RuleFrontMatterDate,
			Severity: model.SeverityWarning,
			Message:  "publish date missing",
		})
	}
	return report
}

func TestLintRepository_CreateAndGetRun(t *testing.T) {
	repo := NewLintRepository(testDB(t))

	report := testReport(2, 1)
	require.NoError(t, repo.CreateRun(report))

	got, err := repo.Run(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report.RunID, got.RunID)
	assert.Equal(t, 5, got.Pages)
	assert.Equal(t, 2, got.Errors)
	assert.Equal(t, 1, got.Warnings)
	require.Len(t, got.Issues, 3)

	// Issues come back ordered by path then line.
	assert.Equal(t, "guide/other.md", got.Issues[0].Path)
	assert.Equal(t, "guide/page.md", got.Issues[1].Path)
	assert.Equal(t, 1, got.Issues[1].Line)
	assert.Equal(t, 2, got.Issues[2].Line)
}

func TestLintRepository_RunNotFound(t *testing.T) {
	repo := NewLintRepository(testDB(t))

	_, err := repo.Run(uuid.NewString())
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = repo.LatestRun()
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestLintRepository_LatestRun(t *testing.T) {
	repo := NewLintRepository(testDB(t))

	older := testReport(1, 0)
	older.StartedAt = time.Now().UTC().Add(-time.Hour)
	older.FinishedAt = older.StartedAt.Add(time.Second)
	require.NoError(t, repo.CreateRun(older))

	newer := testReport(0, 2)
	require.NoError(t, repo.CreateRun(newer))

	got, err := repo.LatestRun()
	require.NoError(t, err)
	assert.Equal(t, newer.RunID, got.RunID)
	assert.Len(t, got.Issues, 2)
}

func TestLintRepository_CleanRun(t *testing.T) {
	repo := NewLintRepository(testDB(t))

	report := testReport(0, 0)
	require.NoError(t, repo.CreateRun(report))

	got, err := repo.Run(report.RunID)
	require.NoError(t, err)
	assert.True(t, got.Clean())
	assert.Empty(t, got.Issues)
}
