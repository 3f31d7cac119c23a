package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesift.ExtractionStore = (*ExtractionService)(nil)

// ExtractionService implements pagesift.ExtractionStore using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// SaveExtraction stores an extraction under its locator key. A later write
// for the same key replaces the earlier row.
func (s *ExtractionService) SaveExtraction(ctx context.Context, ex *pagesift.StoredExtraction) error {
	if err := ex.Validate(); err != nil {
		return err
	}

	ex.ID = uuid.New().String()
	if ex.FetchedAt.IsZero() {
		ex.FetchedAt = time.Now().UTC()
	}

	blocks, err := json.Marshal(ex.Blocks)
	if err != nil {
		return fmt.Errorf("failed to encode content blocks: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, url_hash, domain, url, title, content_blocks, unique_blocks, estimated_words, extraction_method, quality_score, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url_hash, domain) DO UPDATE SET
			id = excluded.id,
			url = excluded.url,
			title = excluded.title,
			content_blocks = excluded.content_blocks,
			unique_blocks = excluded.unique_blocks,
			estimated_words = excluded.estimated_words,
			extraction_method = excluded.extraction_method,
			quality_score = excluded.quality_score,
			fetched_at = excluded.fetched_at
	`, ex.ID, ex.URLHash, ex.Domain, ex.URL, ex.Title, string(blocks), ex.UniqueBlocks,
		ex.EstimatedWords, string(ex.Method), ex.QualityScore, ex.FetchedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByKey retrieves the extraction stored under key.
func (s *ExtractionService) FindExtractionByKey(ctx context.Context, key pagesift.Key) (*pagesift.StoredExtraction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url_hash, domain, url, title, content_blocks, unique_blocks, estimated_words, extraction_method, quality_score, fetched_at
		FROM extractions
		WHERE url_hash = ? AND domain = ?
	`, key.URLHash, key.Domain)

	ex, err := scanExtraction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pagesift.Errorf(pagesift.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	return ex, nil
}

// FindExtractions retrieves all stored extractions, most recent first.
func (s *ExtractionService) FindExtractions(ctx context.Context) ([]*pagesift.StoredExtraction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, url_hash, domain, url, title, content_blocks, unique_blocks, estimated_words, extraction_method, quality_score, fetched_at
		FROM extractions
		ORDER BY fetched_at DESC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exs []*pagesift.StoredExtraction
	for rows.Next() {
		ex, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, err
		}
		exs = append(exs, ex)
	}

	return exs, rows.Err()
}

// DeleteExtraction removes the entry for key.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, key pagesift.Key) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM extractions WHERE url_hash = ? AND domain = ?
	`, key.URLHash, key.Domain)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pagesift.Errorf(pagesift.ENOTFOUND, "extraction not found")
	}

	return nil
}

// scanExtraction reads one extraction row via the given scan function.
func scanExtraction(scan func(dest ...any) error) (*pagesift.StoredExtraction, error) {
	var ex pagesift.StoredExtraction
	var blocks, method, fetchedAt string

	if err := scan(&ex.ID, &ex.URLHash, &ex.Domain, &ex.URL, &ex.Title, &blocks,
		&ex.UniqueBlocks, &ex.EstimatedWords, &method, &ex.QualityScore, &fetchedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(blocks), &ex.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode content blocks: %w", err)
	}
	ex.Method = pagesift.Method(method)

	var err error
	ex.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &ex, nil
}
