package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/openlessons/bookd/internal/model"
)

var (
	ErrPageNotFound = errors.New("page not found")
)

type PageRepository interface {
	Upsert(record *model.PageRecord) error
	BySlug(slug string) (*model.PageRecord, error)
	All() ([]*model.PageRecord, error)
	Checksums() (map[string]string, error)
	Search(term string) ([]*model.PageRecord, error)
	DeleteMissing(keep []string) (int64, error)
}

type pageRepository struct {
	db *sqlx.DB
}

func NewPageRepository(db *sqlx.DB) PageRepository {
	return &pageRepository{db: db}
}

func (r *pageRepository) Upsert(record *model.PageRecord) error {
	query := `INSERT INTO pages (slug, path, title, link_title, description, canonical, tags, categories, date, nav_weight, license, word_count, read_time, checksum, indexed_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          ON CONFLICT (slug) DO UPDATE SET
	              path = excluded.path,
	              title = excluded.title,
	              link_title = excluded.link_title,
	              description = excluded.description,
	              canonical = excluded.canonical,
	              tags = excluded.tags,
	              categories = excluded.categories,
	              date = excluded.date,
	              nav_weight = excluded.nav_weight,
	              license = excluded.license,
	              word_count = excluded.word_count,
	              read_time = excluded.read_time,
	              checksum = excluded.checksum,
	              indexed_at = excluded.indexed_at`

	_, err := r.db.Exec(query,
		record.Slug,
		record.Path,
		record.Title,
		record.LinkTitle,
		record.Description,
		record.Canonical,
		record.Tags,
		record.Categories,
		record.Date,
		record.NavWeight,
		record.License,
		record.WordCount,
		record.ReadTime,
		record.Checksum,
		record.IndexedAt,
	)

	return err
}

func (r *pageRepository) BySlug(slug string) (*model.PageRecord, error) {
	record := &model.PageRecord{}
	query := `SELECT * FROM pages WHERE slug = $1`

	err := r.db.Get(record, query, slug)
	if err == sql.ErrNoRows {
		return nil, ErrPageNotFound
	}

	return record, err
}

func (r *pageRepository) All() ([]*model.PageRecord, error) {
	var records []*model.PageRecord
	query := `SELECT * FROM pages ORDER BY nav_weight ASC, link_title ASC, title ASC`

	err := r.db.Select(&records, query)
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *pageRepository) Checksums() (map[string]string, error) {
	rows, err := r.db.Query(`SELECT slug, checksum FROM pages`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checksums := make(map[string]string)
	for rows.Next() {
		var slug, checksum string
		if err := rows.Scan(&slug, &checksum); err != nil {
			return nil, err
		}
		checksums[slug] = checksum
	}

	return checksums, rows.Err()
}

func (r *pageRepository) Search(term string) ([]*model.PageRecord, error) {
	var records []*model.PageRecord
	pattern := "%" + term + "%"
	query := `SELECT * FROM pages
	          WHERE title LIKE $1 OR description LIKE $1 OR tags LIKE $1 OR categories LIKE $1
	          ORDER BY nav_weight ASC, title ASC`

	err := r.db.Select(&records, query, pattern)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteMissing removes index rows whose slug no longer exists on disk.
func (r *pageRepository) DeleteMissing(keep []string) (int64, error) {
	if len(keep) == 0 {
		result, err := r.db.Exec(`DELETE FROM pages`)
		if err != nil {
			return 0, err
		}
		return result.RowsAffected()
	}

	query, args, err := sqlx.In(`DELETE FROM pages WHERE slug NOT IN (?)`, keep)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Exec(r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
