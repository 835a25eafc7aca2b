package ports

import (
	"context"

	"themeconv/internal/domain"
)

// RunRecorder persists finished batches
type RunRecorder interface {
	RecordRun(ctx context.Context, run domain.RunRecord) error
}

// RunReader reads persisted batches
type RunReader interface {
	// ListRuns returns the most recent runs first. limit <= 0 returns all.
	ListRuns(ctx context.Context, limit int) ([]domain.RunRecord, error)
}

// RunRepository is the composite interface
type RunRepository interface {
	RunRecorder
	RunReader
	Close() error
}
