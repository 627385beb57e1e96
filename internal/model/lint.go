package model

import (
	"time"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Lint rule identifiers. Handlers and the CLI report issues by rule name.
const (
	RuleFrontMatterParse    = "frontmatter/parse"
	RuleFrontMatterRequired = "frontmatter/required"
	RuleFrontMatterCanon    = "frontmatter/canonical"
	RuleFrontMatterDate     = "frontmatter/date"
	RuleNavWeight           = "frontmatter/nav-weight"
	RuleCodeLanguageTag     = "code/language-tag"
	RuleQuizStructure       = "quiz/structure"
	RuleLicenseMissing      = "license/missing"
)

// ParseIssue is a load-time diagnostic attached to a page. The lint engine
// turns these into LintIssues under the rule recorded here.
type ParseIssue struct {
	Rule    string
	Line    int
	Message string
}

// LintIssue is one finding against one document.
type LintIssue struct {
	RunID    string `json:"-" db:"run_id"`
	Path     string `json:"path" db:"path"`
	Line     int    `json:"line,omitempty" db:"line"`
	Rule     string `json:"rule" db:"rule"`
	Severity string `json:"severity" db:"severity"`
	Message  string `json:"message" db:"message"`
}

// LintReport is the result of one lint run over the whole content tree.
type LintReport struct {
	RunID      string      `json:"run_id" db:"run_id"`
	StartedAt  time.Time   `json:"started_at" db:"started_at"`
	FinishedAt time.Time   `json:"finished_at" db:"finished_at"`
	Pages      int         `json:"pages" db:"pages"`
	Errors     int         `json:"errors" db:"errors"`
	Warnings   int         `json:"warnings" db:"warnings"`
	Issues     []LintIssue `json:"issues"`
}

// Clean reports whether the run produced no errors.
func (r *LintReport) Clean() bool {
	return r.Errors == 0
}
