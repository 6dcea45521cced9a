package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fansite/internal/config"
	"fansite/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis keys
	ReportKeyPrefix = "fa:report:"
	LatestReportKey = "fa:report:latest"
	ActiveBlocksKey = "fa:blocks"
	ReportTTL       = 24 * time.Hour
)

// ErrReportNotFound is returned when no report is stored for a run
var ErrReportNotFound = errors.New("report not found")

// RedisRepository stores report snapshots and the login blocks handed
// from one run to the next
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveReport stores the report under its run and marks it as the latest
func (r *RedisRepository) SaveReport(ctx context.Context, report *model.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.reportKey(report.RunID), data, ReportTTL)
		pipe.Set(ctx, LatestReportKey, report.RunID, ReportTTL)
		return nil
	})
	return err
}

// GetReport loads the report of a run. An empty runID loads the latest.
func (r *RedisRepository) GetReport(ctx context.Context, runID string) (*model.Report, error) {
	if runID == "" {
		latest, err := r.client.Get(ctx, LatestReportKey).Result()
		if errors.Is(err, redis.Nil) {
			return nil, ErrReportNotFound
		}
		if err != nil {
			return nil, err
		}
		runID = latest
	}

	data, err := r.client.Get(ctx, r.reportKey(runID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// SaveActiveBlocks replaces the stored blocks with blocks
func (r *RedisRepository) SaveActiveBlocks(ctx context.Context, blocks []model.ActiveBlock) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, ActiveBlocksKey)
		if len(blocks) == 0 {
			return nil
		}

		values := make([]interface{}, 0, 2*len(blocks))
		for _, b := range blocks {
			values = append(values, b.Host, b.Until.Format(time.RFC3339))
		}
		pipe.HSet(ctx, ActiveBlocksKey, values...)
		pipe.Expire(ctx, ActiveBlocksKey, ReportTTL)
		return nil
	})
	return err
}

// LoadActiveBlocks returns the stored blocks sorted by host. Entries with
// an unreadable deadline are skipped.
func (r *RedisRepository) LoadActiveBlocks(ctx context.Context) ([]model.ActiveBlock, error) {
	entries, err := r.client.HGetAll(ctx, ActiveBlocksKey).Result()
	if err != nil {
		return nil, err
	}

	blocks := make([]model.ActiveBlock, 0, len(entries))
	for host, until := range entries {
		t, err := time.Parse(time.RFC3339, until)
		if err != nil {
			log.Warn().Err(err).Str("host", host).Msg("Skipping unreadable block deadline")
			continue
		}
		blocks = append(blocks, model.ActiveBlock{Host: host, Until: t})
	}

	slices.SortFunc(blocks, func(a, b model.ActiveBlock) int {
		return strings.Compare(a.Host, b.Host)
	})
	return blocks, nil
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) reportKey(runID string) string {
	return ReportKeyPrefix + runID
}
