package repository

import (
	"context"

	"fansite/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	SaveBlockedRequests(ctx context.Context, reqs []model.BlockedRequest) error
	GetBlockedRequests(ctx context.Context, runID string, limit int) ([]model.BlockedRequest, error)
	CountBlockedRequests(ctx context.Context, runID string) (int64, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, runID string) (*model.Report, error)
	SaveActiveBlocks(ctx context.Context, blocks []model.ActiveBlock) error
	LoadActiveBlocks(ctx context.Context) ([]model.ActiveBlock, error)
	Close() error
}

var (
	_ MySQLRepositoryInterface = (*MySQLRepository)(nil)
	_ RedisRepositoryInterface = (*RedisRepository)(nil)
)
