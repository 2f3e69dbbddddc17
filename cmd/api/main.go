package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbersmart-admin/internal/archive"
	"github.com/BruksfildServices01/barbersmart-admin/internal/audit"
	"github.com/BruksfildServices01/barbersmart-admin/internal/cache"
	"github.com/BruksfildServices01/barbersmart-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/barbersmart-admin/internal/db"
	"github.com/BruksfildServices01/barbersmart-admin/internal/infra/poller"
	infraRepo "github.com/BruksfildServices01/barbersmart-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbersmart-admin/internal/logger"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
	"github.com/BruksfildServices01/barbersmart-admin/internal/routes"
	"github.com/BruksfildServices01/barbersmart-admin/internal/upstream"
	ucInvoice "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/invoice"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, os.Getenv("LOG_PRETTY") == "true")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// METRICS
	// ======================================================
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// ======================================================
	// AUDIT
	// ======================================================
	var db *gorm.DB
	var sink audit.Sink = audit.NewLogSink(log)
	if cfg.DBUrl != "" {
		conn, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("audit database unavailable, auditing to log only")
		} else {
			db = conn
			sink = audit.New(db)
		}
	}
	auditDispatcher := audit.NewDispatcher(sink, log)
	defer auditDispatcher.Close()

	// ======================================================
	// SNAPSHOTS
	// ======================================================
	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamToken, cfg.UpstreamTimeout)

	var snapshotCache infraRepo.Cache
	if cfg.CacheEnabled() {
		rdb, err := cache.Open(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, reading snapshots straight from upstream")
		} else {
			defer rdb.Close()
			snapshotCache = cache.NewSnapshotCache(rdb, cfg.SnapshotTTL)
		}
	}
	snapshots := infraRepo.NewSnapshotRepository(client, snapshotCache, log, m)

	if snapshotCache != nil {
		go poller.New(snapshots, cfg.PollInterval, log).Run(ctx)
	}

	// ======================================================
	// ARCHIVE
	// ======================================================
	var archiver ucInvoice.Archiver
	if cfg.ArchiveEnabled() {
		archiver = archive.NewS3Archiver(archive.NewS3Client(cfg), cfg.S3Bucket)
	}

	// ======================================================
	// HTTP
	// ======================================================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	routes.RegisterRoutes(r, cfg, routes.Infra{
		Snapshots: snapshots,
		DB:        db,
		Audit:     auditDispatcher,
		Archiver:  archiver,
		Metrics:   m,
		Gatherer:  reg,
		Log:       log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("upstream", cfg.UpstreamURL).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
