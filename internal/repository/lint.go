package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/openlessons/bookd/internal/model"
)

var (
	ErrRunNotFound = errors.New("lint run not found")
)

type LintRepository interface {
	CreateRun(report *model.LintReport) error
	Run(runID string) (*model.LintReport, error)
	LatestRun() (*model.LintReport, error)
}

type lintRepository struct {
	db *sqlx.DB
}

func NewLintRepository(db *sqlx.DB) LintRepository {
	return &lintRepository{db: db}
}

// CreateRun persists a finished report with all of its issues.
func (r *lintRepository) CreateRun(report *model.LintReport) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO lint_runs (run_id, started_at, finished_at, pages, errors, warnings)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = tx.Exec(query,
		report.RunID,
		report.StartedAt,
		report.FinishedAt,
		report.Pages,
		report.Errors,
		report.Warnings,
	)
	if err != nil {
		return err
	}

	issueQuery := `INSERT INTO lint_issues (run_id, path, line, rule, severity, message)
	               VALUES ($1, $2, $3, $4, $5, $6)`

	for _, issue := range report.Issues {
		_, err = tx.Exec(issueQuery,
			report.RunID,
			issue.Path,
			issue.Line,
			issue.Rule,
			issue.Severity,
			issue.Message,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *lintRepository) Run(runID string) (*model.LintReport, error) {
	report := &model.LintReport{}
	query := `SELECT run_id, started_at, finished_at, pages, errors, warnings
	          FROM lint_runs WHERE run_id = $1`

	err := r.db.Get(report, query, runID)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.withIssues(report)
}

func (r *lintRepository) LatestRun() (*model.LintReport, error) {
	report := &model.LintReport{}
	query := `SELECT run_id, started_at, finished_at, pages, errors, warnings
	          FROM lint_runs ORDER BY started_at DESC LIMIT 1`

	err := r.db.Get(report, query)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}

	return r.withIssues(report)
}

func (r *lintRepository) withIssues(report *model.LintReport) (*model.LintReport, error) {
	var issues []model.LintIssue
	query := `SELECT run_id, path, line, rule, severity, message
	          FROM lint_issues WHERE run_id = $1 ORDER BY path ASC, line ASC`

	err := r.db.Select(&issues, query, report.RunID)
	if err != nil {
		return nil, err
	}

	report.Issues = issues
	return report, nil
}
