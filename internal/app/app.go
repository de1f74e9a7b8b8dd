package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/webaplicationjsx/warehouse-backend/internal/config"
	"github.com/webaplicationjsx/warehouse-backend/internal/database"
	"github.com/webaplicationjsx/warehouse-backend/internal/metrics"
	"github.com/webaplicationjsx/warehouse-backend/internal/repository"
	"github.com/webaplicationjsx/warehouse-backend/internal/server/rest"
	"github.com/webaplicationjsx/warehouse-backend/internal/service"
	"github.com/webaplicationjsx/warehouse-backend/pkg/logger"
)

const connectTimeout = 30 * time.Second

// Run loads the configuration, prepares the database and serves the API until SIGINT or SIGTERM.
func Run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error(err.Error())
		}
	}()

	if err := database.Bootstrap(ctx, db); err != nil {
		return fmt.Errorf("failed to bootstrap database schema: %w", err)
	}

	server := rest.NewServer(
		service.NewUserService(repository.NewUserRepository(db)),
		service.NewRecordService(repository.NewRecordRepository(db)),
		rest.WithAddress(net.JoinHostPort(cfg.ServerAddress, strconv.Itoa(cfg.ServerPort))),
		rest.WithReadTimeout(cfg.ReadTimeout),
		rest.WithWriteTimeout(cfg.WriteTimeout),
		rest.WithMetrics(metrics.New()),
	)

	return serve(ctx, server, cfg.ShutdownTimeout)
}

func connect(ctx context.Context, cfg *config.Config) (*database.PostgresDatabase, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := database.NewPostgresDatabase(connectCtx, cfg.DatabaseURL,
		database.WithMaxOpenConns(cfg.DBMaxOpenConns),
		database.WithMaxIdleConns(cfg.DBMaxIdleConns),
		database.WithConnMaxLifetime(cfg.DBConnMaxLifetime),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// serve runs server until ctx is done, then shuts it down within shutdownTimeout.
func serve(ctx context.Context, server *rest.Server, shutdownTimeout time.Duration) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info(fmt.Sprintf("Warehouse Backend is listening on %s", server.Addr))

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to run server on %s: %w", server.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		logger.Info("Shutting down Warehouse Backend")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
