package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fansite/internal/config"
	"fansite/internal/handler"
	"fansite/internal/mq"
	"fansite/internal/output"
	"fansite/internal/repository"
	"fansite/internal/service"
	"fansite/pkg/middleware"
	"fansite/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fan Site Log Analytics API
// @version 1.0
// @description Access log analytics: active hosts, bandwidth, busy hours and blocked logins

// @host localhost:8080
// @BasePath /
func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	configPath, _ := flags.GetString("config")

	// Load configuration
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	runID := util.GenerateUUID()
	log.Info().Str("run_id", runID).Bool("serve", cfg.Serve).Msg("Starting analyzer")

	// Storage and MQ are optional, the analyzer runs without them
	var reports service.ReportStore
	if cfg.Database.Redis.Addr != "" {
		redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
		defer redisRepo.Close()
		reports = redisRepo
	}

	var (
		archive       service.BlockedStore
		archiveReader service.BlockedArchive
	)
	if cfg.Database.MySQL.DSN != "" {
		mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
		defer mysqlRepo.Close()
		archive = mysqlRepo
		archiveReader = mysqlRepo
	}

	var producer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			defer mqProducer.Close()
			producer = mqProducer
		}
	}

	analyzer := service.NewAnalyzer(service.OptionsFromConfig(runID, &cfg.Tracker), reports, archive, producer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := analyzer.Resume(ctx); err != nil {
		log.Warn().Err(err).Msg("Starting without previous login blocks")
	}

	if cfg.Serve {
		serve(ctx, cfg, analyzer, reports, archiveReader)
	} else if err := runBatch(ctx, cfg, analyzer); err != nil {
		log.Error().Err(err).Msg("Batch run failed")
		stop()
		os.Exit(1)
	}
}

// runBatch analyzes the configured input file and writes the result files
func runBatch(ctx context.Context, cfg *config.Config, analyzer *service.Analyzer) error {
	f, err := os.Open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	start := time.Now()
	if err := analyzer.IngestReader(ctx, f); err != nil {
		return fmt.Errorf("failed to ingest %s: %w", cfg.Input.Path, err)
	}
	analyzer.Finish()

	report := analyzer.Report()
	if err := output.WriteAll(cfg.Output.Dir, report); err != nil {
		return err
	}

	log.Info().
		Str("run_id", report.RunID).
		Int64("lines", report.Stats.TotalLines).
		Int64("skipped", report.Stats.SkippedLines).
		Int64("untimed", report.Stats.UntimedLines).
		Int("blocked", len(report.Blocked)).
		Dur("elapsed", time.Since(start)).
		Str("output", cfg.Output.Dir).
		Msg("Analysis complete")

	if err := analyzer.Persist(ctx); err != nil {
		log.Warn().Err(err).Msg("Results written but not fully persisted")
	}
	return nil
}

// serve runs the report API, and the log line consumer when RocketMQ is
// configured, until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, analyzer *service.Analyzer, reports service.ReportStore, archive service.BlockedArchive) {
	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	reportHandler := handler.NewReportHandler(analyzer, reports, archive)

	// API v1 routes
	reportHandler.Register(router.Group("/api/v1"))

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", reportHandler.Health)

	// Start MQ consumer if configured
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err := mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, line string) error {
			return analyzer.IngestLine(line)
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	analyzer.Finish()
	if err := analyzer.Persist(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to persist final report")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.RequestIDHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
