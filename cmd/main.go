package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/dashboard/internal/api"
	"github.com/samandr77/microservices/dashboard/internal/api/events"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/apiclient"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/auth"
	"github.com/samandr77/microservices/dashboard/internal/httpclients/clients"
	"github.com/samandr77/microservices/dashboard/internal/query"
	"github.com/samandr77/microservices/dashboard/internal/repository"
	"github.com/samandr77/microservices/dashboard/internal/service"
	"github.com/samandr77/microservices/dashboard/pkg/broker"
	"github.com/samandr77/microservices/dashboard/pkg/config"
	"github.com/samandr77/microservices/dashboard/pkg/job"
	"github.com/samandr77/microservices/dashboard/pkg/logger"
	"github.com/samandr77/microservices/dashboard/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second

	queryBackendRedis = "redis"
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	clientsAPI := clients.NewClient(apiclient.New(cfg.ClientsAPI))
	authClient := auth.NewClient(cfg.AuthServiceURL)

	var (
		store       query.Store
		memoryStore *query.MemoryStore
	)

	if cfg.Query.Backend == queryBackendRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		err = rdb.Ping(ctx).Err()
		panicOnErr("ping redis", err)

		store = query.NewRedisStore(rdb, cfg.Redis.Prefix)
	} else {
		memoryStore = query.NewMemoryStore()
		store = memoryStore
	}

	queries := query.New(store, query.Options{
		StaleTime:   cfg.Query.StaleTime,
		GCTime:      cfg.Query.GCTime,
		Retry:       cfg.Query.Retry,
		RetryDelay:  cfg.Query.RetryDelay,
		ShouldRetry: service.ShouldRetry,
	})

	var producer service.Producer

	if cfg.Kafka.Enabled {
		p := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.AuditTopic)
		defer p.Close()

		producer = p
	}

	s := service.New(clientsAPI, repo, producer, queries)

	// Kafka consumers
	if cfg.Kafka.Enabled {
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.ClientEventsTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.ClientEventsTopic, eventHandler.OnClientChanged)
		consumer.Consume(ctx)
	}

	scheduler := job.NewScheduler().
		TryRegister(memoryStore != nil, "query_cache_cleanup", cfg.Jobs.CacheCleanupInterval, func(ctx context.Context) error {
			return memoryStore.Cleanup(ctx)
		}).
		Register("audit_retention", cfg.Jobs.AuditCleanupInterval, func(ctx context.Context) error {
			return s.CleanupAuditLog(ctx, cfg.Jobs.AuditRetention)
		})

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authClient)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port, "query_backend", cfg.Query.Backend)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	scheduler.Start(ctx)

	waitSignal(cancel, server)

	scheduler.Wait()
	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
