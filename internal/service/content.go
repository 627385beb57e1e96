package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/openlessons/bookd/internal/markdown"
	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/validation"
)

// ContentService owns the parsed content tree. Pages are loaded from the
// content directory, inserted into a nav tree ordered by nav_weight, and
// kept in memory until Reload.
type ContentService struct {
	parser        *markdown.Parser
	contentPath   string
	siteLicense   string
	includeDrafts bool

	mu    sync.RWMutex
	tree  *model.Page
	pages []*model.Page // every loaded file including _index.md and drafts
}

func NewContentService(contentPath, siteLicense string, includeDrafts bool) *ContentService {
	return &ContentService{
		parser:        markdown.NewParser(),
		contentPath:   contentPath,
		siteLicense:   siteLicense,
		includeDrafts: includeDrafts,
	}
}

// BuildTree walks the content directory and rebuilds the nav tree.
func (s *ContentService) BuildTree() error {
	tree, pages, err := s.build()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tree = tree
	s.pages = pages
	s.mu.Unlock()
	return nil
}

// Reload is BuildTree under a different name for the reindex endpoint.
func (s *ContentService) Reload() error {
	return s.BuildTree()
}

func (s *ContentService) build() (*model.Page, []*model.Page, error) {
	tree := &model.Page{
		Title:    "Book",
		Slug:     "",
		Children: []*model.Page{},
	}
	var pages []*model.Page

	// Section metadata from _index.md files, keyed by directory slug. Loaded
	// in a first pass so a directory's _index.md is seen before its pages are
	// inserted, whatever order the walk visits them in.
	dirMetadata := make(map[string]*model.Page)

	err := filepath.Walk(s.contentPath, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() || !strings.HasSuffix(path, ".md") {
			return err
		}

		relPath, err := filepath.Rel(s.contentPath, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		page, err := s.loadPage(path, relPath)
		if err != nil {
			return err
		}
		pages = append(pages, page)

		// _index.md carries metadata for its directory rather than being
		// a page of its own.
		if strings.HasSuffix(relPath, "_index.md") {
			dir := strings.TrimSuffix(relPath, "/_index.md")
			if dir == "_index.md" { // root _index.md
				dir = ""
			}
			dirMetadata[dir] = page
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	for _, page := range pages {
		if strings.HasSuffix(page.Path, "_index.md") {
			continue
		}
		if page.Draft && !s.includeDrafts {
			continue
		}
		insertPage(tree, page, page.Path, dirMetadata, s.titleFromSlug)
	}

	sortTree(tree)
	return tree, pages, nil
}

func (s *ContentService) loadPage(fullPath, relPath string) (*model.Page, error) {
	source, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSuffix(relPath, ".md")
	sum := sha256.Sum256(source)

	page := &model.Page{
		Slug:     slug,
		Path:     relPath,
		Content:  string(source),
		Checksum: hex.EncodeToString(sum[:]),
		Children: []*model.Page{},
	}

	meta := s.decodeFrontmatter(source, page)
	s.applyMeta(page, meta)

	fmLines := markdown.FrontmatterLines(source)
	_, rawBody := markdown.SplitFrontmatter(source)

	body, quizzes, quizIssues := markdown.ExtractQuizzes(string(rawBody), fmLines+1)
	page.Body = body
	for i := range quizzes {
		quizzes[i].PageSlug = slug
	}
	page.Quizzes = quizzes
	for _, issue := range quizIssues {
		issue.Rule = model.RuleQuizStructure
		page.Problems = append(page.Problems, issue)
	}

	html, err := s.parser.Parse([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", relPath, err)
	}
	page.HTMLContent = string(html)

	blocks, err := s.parser.ExtractCodeBlocks(source)
	if err != nil {
		return nil, fmt.Errorf("scan code blocks in %s: %w", relPath, err)
	}
	page.CodeBlocks = blocks

	page.WordCount = len(strings.Fields(body))
	page.ReadTime = readTime(page.WordCount)

	if page.Title == "" {
		page.Title = s.titleFromSlug(slug)
		page.TitleDerived = true
	}
	if page.License == "" {
		page.License = s.siteLicense
	}

	return page, nil
}

// decodeFrontmatter unmarshals the YAML block, recording a parse problem
// instead of failing the whole load when the block is missing or broken.
func (s *ContentService) decodeFrontmatter(source []byte, page *model.Page) map[string]any {
	if !markdown.HasFrontmatter(source) {
		page.Problems = append(page.Problems, model.ParseIssue{
			Rule:    model.RuleFrontMatterParse,
			Line:    1,
			Message: "document has no front-matter block",
		})
		return map[string]any{}
	}

	fm, _ := markdown.SplitFrontmatter(source)
	var meta map[string]any
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		page.Problems = append(page.Problems, model.ParseIssue{
			Rule:    model.RuleFrontMatterParse,
			Line:    1,
			Message: "front-matter is not well-formed YAML: " + err.Error(),
		})
		return map[string]any{}
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta
}

func (s *ContentService) applyMeta(page *model.Page, meta map[string]any) {
	page.Title = metaString(meta, "title")
	page.LinkTitle = metaString(meta, "linkTitle")
	page.Description = metaString(meta, "description")
	page.Canonical = metaString(meta, "canonical")
	page.License = metaString(meta, "license")
	page.Tags = metaStrings(meta, "tags")
	page.Categories = metaStrings(meta, "categories")
	page.Draft = metaBool(meta, "draft")

	if raw, ok := meta["date"]; ok {
		date, err := validation.ParseDate(raw)
		if err != nil {
			page.Problems = append(page.Problems, model.ParseIssue{
				Rule:    model.RuleFrontMatterDate,
				Line:    1,
				Message: err.Error(),
			})
		} else {
			page.Date = date
		}
	}

	if raw, ok := meta["nav_weight"]; ok {
		weight, err := metaInt(raw)
		if err != nil {
			page.Problems = append(page.Problems, model.ParseIssue{
				Rule:    model.RuleNavWeight,
				Line:    1,
				Message: "nav_weight " + err.Error(),
			})
		} else {
			page.NavWeight = weight
		}
	}
}

func insertPage(tree, page *model.Page, relPath string, dirMetadata map[string]*model.Page, titleFromSlug func(string) string) {
	parts := strings.Split(relPath, "/")
	current := tree

	// Build/traverse the directory structure
	for i := 0; i < len(parts)-1; i++ {
		dirSlug := strings.Join(parts[:i+1], "/")

		var found *model.Page
		for _, child := range current.Children {
			if child.Slug == dirSlug {
				found = child
				break
			}
		}

		if found == nil {
			dirPage := &model.Page{
				Slug:     dirSlug,
				Path:     dirSlug,
				Children: []*model.Page{},
				Parent:   current,
			}

			// Apply metadata from _index.md if available
			meta, ok := dirMetadata[dirSlug]
			if ok {
				dirPage.Title = meta.Title
				dirPage.LinkTitle = meta.LinkTitle
				dirPage.Description = meta.Description
				dirPage.NavWeight = meta.NavWeight
				dirPage.Canonical = meta.Canonical
				dirPage.License = meta.License
				dirPage.HTMLContent = meta.HTMLContent
				dirPage.Body = meta.Body
			} else {
				dirPage.Title = titleFromSlug(parts[i])
			}

			current.Children = append(current.Children, dirPage)
			current = dirPage
		} else {
			current = found
		}
	}

	page.Parent = current
	current.Children = append(current.Children, page)
}

// sortTree orders every level by nav_weight, falling back to the sidebar
// label so pages without a weight keep a stable order.
func sortTree(node *model.Page) {
	sort.Slice(node.Children, func(i, j int) bool {
		if node.Children[i].NavWeight != node.Children[j].NavWeight {
			return node.Children[i].NavWeight < node.Children[j].NavWeight
		}
		return node.Children[i].NavLabel() < node.Children[j].NavLabel()
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

// Tree returns the nav tree, building it on first use.
func (s *ContentService) Tree() (*model.Page, error) {
	s.mu.RLock()
	tree := s.tree
	s.mu.RUnlock()

	if tree == nil {
		err := s.BuildTree()
		if err != nil {
			return nil, err
		}
		s.mu.RLock()
		tree = s.tree
		s.mu.RUnlock()
	}
	return tree, nil
}

// Page returns the page with the given slug. An empty slug resolves to the
// first content page in nav order.
func (s *ContentService) Page(slug string) (*model.Page, error) {
	tree, err := s.Tree()
	if err != nil {
		return nil, err
	}

	if slug == "" {
		first := firstContentPage(tree)
		if first != nil {
			return first, nil
		}
		return tree, nil
	}

	page := findPage(tree, slug)
	if page == nil {
		return nil, fmt.Errorf("page not found: %s", slug)
	}
	return page, nil
}

func firstContentPage(node *model.Page) *model.Page {
	for _, child := range node.Children {
		if len(child.Children) == 0 {
			return child
		}
		page := firstContentPage(child)
		if page != nil {
			return page
		}
	}
	return nil
}

func findPage(node *model.Page, slug string) *model.Page {
	if node.Slug == slug {
		return node
	}
	for _, child := range node.Children {
		found := findPage(child, slug)
		if found != nil {
			return found
		}
	}
	return nil
}

// FlatList returns all content pages in nav (sidebar) order, skipping
// section nodes.
func (s *ContentService) FlatList() ([]*model.Page, error) {
	tree, err := s.Tree()
	if err != nil {
		return nil, err
	}

	var pages []*model.Page
	collectPagesInOrder(tree, &pages)
	return pages, nil
}

func collectPagesInOrder(node *model.Page, pages *[]*model.Page) {
	if node.Slug != "" && len(node.Children) == 0 {
		*pages = append(*pages, node)
	}
	for _, child := range node.Children {
		collectPagesInOrder(child, pages)
	}
}

// AllPages returns every loaded file, including _index.md sections and
// drafts. This is the lint engine's view of the content tree.
func (s *ContentService) AllPages() ([]*model.Page, error) {
	_, err := s.Tree()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pages, nil
}

// PrevNext returns the previous and next content pages in nav order.
func (s *ContentService) PrevNext(current *model.Page) (prev, next *model.Page, err error) {
	pages, err := s.FlatList()
	if err != nil {
		return nil, nil, err
	}

	for i, page := range pages {
		if page.Slug == current.Slug {
			if i > 0 {
				prev = pages[i-1]
			}
			if i < len(pages)-1 {
				next = pages[i+1]
			}
			break
		}
	}
	return prev, next, nil
}

func (s *ContentService) PagesByTag(tag string) ([]*model.Page, error) {
	return s.pagesMatching(func(page *model.Page) bool {
		return containsFold(page.Tags, tag)
	})
}

func (s *ContentService) PagesByCategory(category string) ([]*model.Page, error) {
	return s.pagesMatching(func(page *model.Page) bool {
		return containsFold(page.Categories, category)
	})
}

func (s *ContentService) pagesMatching(match func(*model.Page) bool) ([]*model.Page, error) {
	all, err := s.FlatList()
	if err != nil {
		return nil, err
	}

	var pages []*model.Page
	for _, page := range all {
		if match(page) {
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

func (s *ContentService) titleFromSlug(slug string) string {
	parts := strings.Split(slug, "/")
	lastPart := parts[len(parts)-1]

	lastPart = strings.ReplaceAll(lastPart, "-", " ")
	lastPart = strings.ReplaceAll(lastPart, "_", " ")

	words := strings.Fields(lastPart)
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}

	return strings.Join(words, " ")
}

func readTime(words int) int {
	const wordsPerMinute = 200
	minutes := words / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

func metaString(meta map[string]any, key string) string {
	v, _ := meta[key].(string)
	return v
}

func metaBool(meta map[string]any, key string) bool {
	v, _ := meta[key].(bool)
	return v
}

func metaStrings(meta map[string]any, key string) []string {
	raw, ok := meta[key].([]any)
	if !ok {
		// A single scalar is accepted where a list is expected.
		if single, ok := meta[key].(string); ok && single != "" {
			return []string{single}
		}
		return nil
	}

	var values []string
	for _, item := range raw {
		s, ok := item.(string)
		if ok {
			values = append(values, s)
		}
	}
	return values
}

func metaInt(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("must be an integer, got %T", raw)
	}
}
