package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/ledger-backend/internal/adapter/grpc"
	httpadapter "github.com/simaogato/ledger-backend/internal/adapter/http"
	"github.com/simaogato/ledger-backend/internal/adapter/notification"
	"github.com/simaogato/ledger-backend/internal/adapter/repository/memory"
	"github.com/simaogato/ledger-backend/internal/config"
	"github.com/simaogato/ledger-backend/internal/domain"
	"github.com/simaogato/ledger-backend/internal/logging"
	"github.com/simaogato/ledger-backend/internal/usecase/accounts"
	"github.com/simaogato/ledger-backend/internal/usecase/seeder"
	"github.com/simaogato/ledger-backend/internal/usecase/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("ledger server: %v", err)
	}
}

func run() error {
	// 1. Load configuration and build the logger
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Lock-order checking is costly; only enable it when asked to
	deadlock.Opts.Disable = !cfg.DeadlockDetection
	deadlock.Opts.DeadlockTimeout = cfg.DeadlockTimeout

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Initialize the account store and notifier
	accountRepo := memory.NewAccountRepository()

	notifier, closeNotifier, err := newNotifier(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeNotifier()

	// 3. Initialize services (use cases)
	accountsService := accounts.NewAccountsService(accountRepo, validation.NewTransferValidator(), notifier)

	// Seed the configured bootstrap accounts
	seedAccounts := make([]*domain.Account, 0, len(cfg.SeedAccounts))
	for _, sa := range cfg.SeedAccounts {
		seedAccounts = append(seedAccounts, domain.NewAccount(sa.ID, sa.Balance))
	}
	created, err := seeder.NewAccountSeeder(accountRepo).Seed(ctx, seedAccounts)
	if err != nil {
		return fmt.Errorf("failed to seed accounts: %w", err)
	}
	logger.Info("accounts seeded", zap.Int("created", created), zap.Int("configured", len(seedAccounts)))

	// 4. Build the HTTP and gRPC servers
	app := httpadapter.NewApp(httpadapter.NewHandler(accountsService, accountRepo), logger)
	grpcServer := grpcadapter.NewGRPCServer(grpcadapter.NewServer(accountsService), logger)

	httpLis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.HTTPAddr, err)
	}
	grpcLis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
	}

	// 5. Serve until a signal arrives or a server fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := app.Listener(httpLis, fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("grpc server listening", zap.String("addr", cfg.GRPCAddr))
		if err := grpcServer.Serve(grpcLis); err != nil && !errors.Is(err, grpclib.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		return shutdown(app, grpcServer)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("ledger server stopped")
	return nil
}

// newNotifier builds the notifier selected by configuration
// The returned func releases its resources
func newNotifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (domain.Notifier, func(), error) {
	switch cfg.Notifier {
	case config.NotifierRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		notifier := notification.NewRedisNotifier(client, cfg.RedisChannel, cfg.NotifyTimeout, logger)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := notifier.Ping(pingCtx); err != nil {
			_ = notifier.Close()
			return nil, nil, err
		}

		logger.Info("publishing transfer notifications to redis",
			zap.String("addr", cfg.RedisAddr),
			zap.String("channel", cfg.RedisChannel),
		)
		return notifier, func() {
			if err := notifier.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}, nil
	default:
		return notification.NewLogNotifier(logger), func() {}, nil
	}
}

// shutdown stops both servers, letting in-flight requests finish
func shutdown(app *fiber.App, grpcServer *grpclib.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	err := app.ShutdownWithContext(ctx)

	select {
	case <-stopped:
	case <-ctx.Done():
		grpcServer.Stop()
	}

	if err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
