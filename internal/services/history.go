package services

import (
	"context"
	"fmt"

	"themeconv/internal/domain"
	"themeconv/internal/logging"
	"themeconv/internal/ports"
)

// HistoryService reads the conversion history ledger
type HistoryService struct {
	reader ports.RunReader
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(reader ports.RunReader) *HistoryService {
	return &HistoryService{
		reader: reader,
	}
}

// Recent returns up to limit runs, newest first
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	logging.Logger.Debug("Listing run history", "limit", limit)

	runs, err := s.reader.ListRuns(ctx, limit)
	if err != nil {
		logging.Logger.Error("Failed to list runs", "error", err)
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
