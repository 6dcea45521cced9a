package service

import (
	"context"

	"fansite/internal/model"
)

// ReportStore defines the storage of finished reports and of blocks that
// outlive a run (implemented by the Redis repository)
type ReportStore interface {
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, runID string) (*model.Report, error)
	SaveActiveBlocks(ctx context.Context, blocks []model.ActiveBlock) error
	LoadActiveBlocks(ctx context.Context) ([]model.ActiveBlock, error)
}

// BlockedStore defines the archive of blocked requests (implemented by the
// MySQL repository)
type BlockedStore interface {
	SaveBlockedRequests(ctx context.Context, reqs []model.BlockedRequest) error
}

// BlockedArchive defines reads of the blocked request archive
// (implemented by the MySQL repository)
type BlockedArchive interface {
	GetBlockedRequests(ctx context.Context, runID string, limit int) ([]model.BlockedRequest, error)
	CountBlockedRequests(ctx context.Context, runID string) (int64, error)
}

// AnalyzerInterface defines the analyzer operations used by the HTTP layer
type AnalyzerInterface interface {
	IngestLine(line string) error
	Report() *model.Report
}

var _ AnalyzerInterface = (*Analyzer)(nil)
