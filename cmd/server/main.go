package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"retention/internal/authz"
	"retention/internal/classification"
	classstore "retention/internal/classification/store"
	jwttoken "retention/internal/jwt_token"
	"retention/internal/platform/config"
	"retention/internal/platform/httpserver"
	"retention/internal/platform/logger"
	"retention/internal/platform/metrics"
	"retention/internal/platform/redis"
	ratelimit "retention/internal/ratelimit/middleware"
	"retention/internal/ratelimit/store/bucket"
	"retention/internal/records/handler"
	recordmetrics "retention/internal/records/metrics"
	"retention/internal/records/service"
	httptransport "retention/internal/transport/http"
	audit "retention/pkg/platform/audit"
	"retention/pkg/platform/audit/publisher"
	"retention/pkg/platform/audit/publishers/kafka"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	seeded, err := st.seed(ctx, cfg.SeedFile, log)
	if err != nil {
		return err
	}

	checks := map[string]httptransport.HealthCheck{}
	if st.db != nil {
		checks["postgres"] = st.db.PingContext
	}

	var lookup classification.Lookup = st.classifications
	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		cache := classstore.NewCache(st.classifications, rdb.Client,
			classstore.WithCacheTTL(cfg.Redis.CacheTTL),
			classstore.WithCacheLogger(log),
		)
		if seeded != nil {
			// Redis outlives the process; drop entries the seed may have changed.
			if err := cache.Invalidate(ctx, seeded.ClassificationIDs()...); err != nil {
				log.Warn("classification cache invalidation failed", "error", err)
			}
		}
		lookup = cache
		checks["redis"] = rdb.Health
		log.Info("classification cache enabled", "ttl", cfg.Redis.CacheTTL)
	}

	var buckets ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	if rdb != nil {
		buckets = bucket.NewRedisBucketStore(rdb.Client)
	}
	limiter := ratelimit.New(buckets, log, ratelimit.WithDisabled(cfg.DisableRateLimiting))

	var mirrors []audit.Appender
	if len(cfg.Kafka.Brokers) > 0 {
		client, err := kafka.NewClient(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		if err := kafka.EnsureTopic(ctx, client, cfg.Kafka.Topic, cfg.Kafka.Partitions, cfg.Kafka.ReplicationFactor); err != nil {
			client.Close()
			return err
		}
		sink := kafka.NewSink(client, cfg.Kafka.Topic, kafka.WithLogger(log))
		defer sink.Close()
		mirrors = append(mirrors, sink)
		log.Info("audit kafka mirror enabled", "topic", cfg.Kafka.Topic, "brokers", cfg.Kafka.Brokers)
	}

	// Postgres appends audit rows inside the caller's transaction, which
	// needs the synchronous path.
	pubOpts := []publisher.Option{publisher.WithLogger(log), publisher.WithMetrics(publisher.NewMetrics())}
	if cfg.Storage == config.StorageMemory {
		pubOpts = append(pubOpts, publisher.WithAsyncBuffer(cfg.AuditBuffer))
	}
	auditor := publisher.NewPublisher(audit.NewFanout(st.audit, log, mirrors...), pubOpts...)
	defer auditor.Close()

	svc, err := service.New(
		st.records,
		st.tx,
		classification.NewValidator(lookup),
		authz.NewGate(st.authz, st.authz, st.authz),
		st.authz,
		service.WithLogger(log),
		service.WithAuditPublisher(auditor),
		service.WithAuditReader(st.audit),
		service.WithMetrics(recordmetrics.New()),
		service.WithMaxGenerateAttempts(cfg.MaxGenerateAttempts),
	)
	if err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTAudience)
	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      metrics.New(),
		JWTValidator: jwttoken.NewJWTServiceAdapter(jwtService),
		Checks:       checks,
		RateLimit:    limiter.RateLimitAuthenticated(),
		Modules:      []httptransport.Registrar{handler.New(svc, log)},
	})

	srv := httpserver.New(cfg.Addr, router)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting retention server", "addr", cfg.Addr, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
