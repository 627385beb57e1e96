package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/repository"
	"github.com/openlessons/bookd/internal/validation"
)

// LintService checks the integrity of the content tree: well-formed
// front-matter, language-tagged code blocks, and complete quiz
// question/answer/explanation triplets.
type LintService struct {
	content *ContentService
	repo    repository.LintRepository // nil when running without persistence (CLI)
	strict  bool
}

func NewLintService(content *ContentService, repo repository.LintRepository, strict bool) *LintService {
	return &LintService{
		content: content,
		repo:    repo,
		strict:  strict,
	}
}

// Run lints every loaded page and returns the report. When a repository is
// configured the report is persisted before returning.
func (s *LintService) Run(ctx context.Context) (*model.LintReport, error) {
	started := time.Now().UTC()

	pages, err := s.content.AllPages()
	if err != nil {
		return nil, err
	}

	report := &model.LintReport{
		RunID:     uuid.NewString(),
		StartedAt: started,
		Pages:     len(pages),
	}

	weights := navWeightsBySection(pages)

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.Issues = append(report.Issues, s.lintPage(page, weights)...)
	}

	for i := range report.Issues {
		report.Issues[i].RunID = report.RunID
		if s.strict && report.Issues[i].Severity == model.SeverityWarning {
			report.Issues[i].Severity = model.SeverityError
		}
		switch report.Issues[i].Severity {
		case model.SeverityError:
			report.Errors++
		case model.SeverityWarning:
			report.Warnings++
		}
	}

	report.FinishedAt = time.Now().UTC()

	if s.repo != nil {
		if err := s.repo.CreateRun(report); err != nil {
			return nil, fmt.Errorf("persist lint run: %w", err)
		}
	}

	return report, nil
}

// LatestReport returns the most recent persisted report.
func (s *LintService) LatestReport() (*model.LintReport, error) {
	if s.repo == nil {
		return nil, repository.ErrRunNotFound
	}
	return s.repo.LatestRun()
}

func (s *LintService) lintPage(page *model.Page, weights map[string]map[int]int) []model.LintIssue {
	var issues []model.LintIssue

	add := func(line int, rule, severity, message string) {
		issues = append(issues, model.LintIssue{
			Path:     page.Path,
			Line:     line,
			Rule:     rule,
			Severity: severity,
			Message:  message,
		})
	}

	// Load-time diagnostics recorded by the content loader.
	for _, problem := range page.Problems {
		add(problem.Line, problem.Rule, model.SeverityError, problem.Message)
	}

	hadParseError := false
	for _, problem := range page.Problems {
		if problem.Rule == model.RuleFrontMatterParse {
			hadParseError = true
		}
	}

	// Field checks are meaningless when the front-matter didn't parse.
	if !hadParseError {
		// The loader backfills missing titles from the slug so pages stay
		// renderable; the derived flag keeps the omission visible here.
		if page.TitleDerived {
			add(1, model.RuleFrontMatterRequired, model.SeverityError, "title is required")
		} else if err := validation.ValidateTitle(page.Title); err != nil {
			add(1, model.RuleFrontMatterRequired, model.SeverityError, err.Error())
		}
		if err := validation.ValidateDescription(page.Description); err != nil {
			add(1, model.RuleFrontMatterRequired, model.SeverityError, err.Error())
		}

		if page.Canonical == "" {
			if !isSectionFile(page.Path) {
				add(1, model.RuleFrontMatterCanon, model.SeverityWarning, "canonical URL missing")
			}
		} else if err := validation.ValidateCanonical(page.Canonical); err != nil {
			add(1, model.RuleFrontMatterCanon, model.SeverityError, err.Error())
		}

		if page.Date.IsZero() && !hasProblem(page, model.RuleFrontMatterDate) {
			add(1, model.RuleFrontMatterDate, model.SeverityWarning, "publish date missing")
		}

		if err := validation.ValidateNavWeight(page.NavWeight); err != nil {
			add(1, model.RuleNavWeight, model.SeverityError, err.Error())
		} else if page.NavWeight > 0 {
			section := path.Dir(page.Path)
			if weights[section][page.NavWeight] > 1 {
				add(1, model.RuleNavWeight, model.SeverityWarning,
					fmt.Sprintf("nav_weight %d is shared by %d pages in %s", page.NavWeight, weights[section][page.NavWeight], section))
			}
		}

		if page.License == "" {
			add(1, model.RuleLicenseMissing, model.SeverityWarning, "no license set and no site-wide default configured")
		}
	}

	// Every fenced code block must carry a language tag.
	for _, block := range page.CodeBlocks {
		if strings.TrimSpace(block.Language) == "" {
			add(block.Line, model.RuleCodeLanguageTag, model.SeverityError, "fenced code block has no language tag")
		}
	}

	// Quiz triplets: each question needs options, a correct answer, and an
	// explanation.
	for _, quiz := range page.Quizzes {
		if len(quiz.Questions) == 0 {
			add(quiz.Line, model.RuleQuizStructure, model.SeverityWarning, "quizdown block contains no questions")
			continue
		}
		for _, question := range quiz.Questions {
			if len(question.Options) < 2 {
				add(question.Line, model.RuleQuizStructure, model.SeverityError,
					fmt.Sprintf("question %q has fewer than two answer options", truncate(question.Prompt, 60)))
			}
			if question.CorrectCount() == 0 {
				add(question.Line, model.RuleQuizStructure, model.SeverityError,
					fmt.Sprintf("question %q has no option marked [x]", truncate(question.Prompt, 60)))
			}
			if strings.TrimSpace(question.Explanation) == "" {
				add(question.Line, model.RuleQuizStructure, model.SeverityError,
					fmt.Sprintf("question %q has no explanation blockquote", truncate(question.Prompt, 60)))
			}
		}
	}

	return issues
}

// navWeightsBySection counts explicit nav_weight usage per directory so
// duplicates within a section can be flagged. Weight 0 (unset) is skipped.
func navWeightsBySection(pages []*model.Page) map[string]map[int]int {
	weights := make(map[string]map[int]int)
	for _, page := range pages {
		if page.NavWeight <= 0 || isSectionFile(page.Path) {
			continue
		}
		section := path.Dir(page.Path)
		if weights[section] == nil {
			weights[section] = make(map[int]int)
		}
		weights[section][page.NavWeight]++
	}
	return weights
}

func isSectionFile(p string) bool {
	return strings.HasSuffix(p, "_index.md")
}

func hasProblem(page *model.Page, rule string) bool {
	for _, problem := range page.Problems {
		if problem.Rule == rule {
			return true
		}
	}
	return false
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
