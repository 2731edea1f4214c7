package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
)

// Накатывает встроенные миграции или печатает текущую версию схемы.
//
//	migrate -command=up
//	migrate -command=status
func main() {
	command := flag.String("command", "up", "up | status")
	envFile := flag.String("env", dotenv.DefaultFile, "path to .env file")
	flag.Parse()

	if _, err := dotenv.Load(*envFile); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	var log logger.Logger = zapLogger

	if err := run(context.Background(), log, *command); err != nil {
		log.Error("migrate failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log logger.Logger, command string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	switch command {
	case "up":
		return postgres.Migrate(ctx, log, pool)
	case "status":
		version, err := postgres.MigrationStatus(ctx, pool)
		if err != nil {
			return err
		}
		log.Info("schema version", logger.NewField("version", version))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
