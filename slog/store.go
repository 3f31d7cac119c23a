package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure LoggingExtractionStore implements pagesift.ExtractionStore.
var _ pagesift.ExtractionStore = (*LoggingExtractionStore)(nil)

// LoggingExtractionStore wraps an ExtractionStore with per-operation
// logging.
type LoggingExtractionStore struct {
	next   pagesift.ExtractionStore
	logger *slog.Logger
}

// NewLoggingExtractionStore creates a new LoggingExtractionStore.
func NewLoggingExtractionStore(next pagesift.ExtractionStore, logger *slog.Logger) *LoggingExtractionStore {
	return &LoggingExtractionStore{next: next, logger: logger}
}

// SaveExtraction delegates to the wrapped store and logs the operation.
func (s *LoggingExtractionStore) SaveExtraction(ctx context.Context, ex *pagesift.StoredExtraction) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save extraction",
			"key", ex.Key().String(),
			"blocks", len(ex.Blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveExtraction(ctx, ex)
}

// FindExtractionByKey delegates to the wrapped store.
func (s *LoggingExtractionStore) FindExtractionByKey(ctx context.Context, key pagesift.Key) (*pagesift.StoredExtraction, error) {
	return s.next.FindExtractionByKey(ctx, key)
}

// FindExtractions delegates to the wrapped store.
func (s *LoggingExtractionStore) FindExtractions(ctx context.Context) ([]*pagesift.StoredExtraction, error) {
	return s.next.FindExtractions(ctx)
}

// DeleteExtraction delegates to the wrapped store and logs the operation.
func (s *LoggingExtractionStore) DeleteExtraction(ctx context.Context, key pagesift.Key) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete extraction",
			"key", key.String(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteExtraction(ctx, key)
}
