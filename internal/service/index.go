package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openlessons/bookd/internal/model"
	"github.com/openlessons/bookd/internal/repository"
)

// IndexService mirrors parsed page metadata into the pages table so the
// search endpoint and the CLI can query it. Checksums short-circuit pages
// whose source file did not change.
type IndexService struct {
	content *ContentService
	repo    repository.PageRepository
}

func NewIndexService(content *ContentService, repo repository.PageRepository) *IndexService {
	return &IndexService{
		content: content,
		repo:    repo,
	}
}

// Sync reloads the content tree and upserts changed pages. It returns the
// number of pages written.
func (s *IndexService) Sync(ctx context.Context) (int, error) {
	if err := s.content.Reload(); err != nil {
		return 0, fmt.Errorf("reload content: %w", err)
	}

	pages, err := s.content.FlatList()
	if err != nil {
		return 0, err
	}

	existing, err := s.repo.Checksums()
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	written := 0
	keep := make([]string, 0, len(pages))

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		keep = append(keep, page.Slug)

		if existing[page.Slug] == page.Checksum {
			continue
		}

		if err := s.repo.Upsert(model.NewPageRecord(page, now)); err != nil {
			return written, fmt.Errorf("index %s: %w", page.Slug, err)
		}
		written++
	}

	removed, err := s.repo.DeleteMissing(keep)
	if err != nil {
		return written, err
	}

	slog.Info("content index synced", "pages", len(pages), "written", written, "removed", removed)
	return written, nil
}

// Search queries the indexed metadata.
func (s *IndexService) Search(term string) ([]*model.PageRecord, error) {
	return s.repo.Search(term)
}
