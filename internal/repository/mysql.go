package repository

import (
	"context"
	"time"

	"fansite/internal/config"
	"fansite/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// insertBatchSize bounds the rows of a single INSERT
const insertBatchSize = 500

// MySQLRepository archives blocked requests
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.BlockedRequest{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// SaveBlockedRequests inserts reqs in batches. An empty slice is a no-op.
func (r *MySQLRepository) SaveBlockedRequests(ctx context.Context, reqs []model.BlockedRequest) error {
	if len(reqs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&reqs, insertBatchSize).Error
}

// GetBlockedRequests returns the blocked requests of a run in arrival order
func (r *MySQLRepository) GetBlockedRequests(ctx context.Context, runID string, limit int) ([]model.BlockedRequest, error) {
	var reqs []model.BlockedRequest
	query := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&reqs).Error
	return reqs, err
}

// CountBlockedRequests returns the number of blocked requests of a run
func (r *MySQLRepository) CountBlockedRequests(ctx context.Context, runID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BlockedRequest{}).
		Where("run_id = ?", runID).
		Count(&count).Error
	return count, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
