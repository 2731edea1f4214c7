//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/postgres"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	container       *tcpostgres.PostgresContainer
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

// start поднимает один контейнер PostgreSQL на пакет тестов и накатывает миграции.
func start() {
	setupOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		var err error
		container, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("dispatch"),
			tcpostgres.WithUsername("dispatch"),
			tcpostgres.WithPassword("dispatch"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}

		connString, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("failed to get connection string: %v", err)
		}

		poolInstance, err = pgxpool.New(ctx, connString)
		if err != nil {
			log.Fatalf("failed to create pool: %v", err)
		}

		if err := postgres.Migrate(ctx, zap_adapter.NewNop(), poolInstance); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	start()
	return querierInstance
}

func GetPool() *pgxpool.Pool {
	start()
	return poolInstance
}

// Terminate вызывается из TestMain пакета после всех тестов.
func Terminate() {
	if poolInstance != nil {
		poolInstance.Close()
	}
	if container != nil {
		if err := container.Terminate(context.Background()); err != nil {
			log.Printf("failed to terminate postgres container: %v", err)
		}
	}
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE loyalty_awards, loyalty_accounts, orders, couriers RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
