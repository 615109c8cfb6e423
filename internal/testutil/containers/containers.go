// Package containers levanta Postgres y Redis efímeros para los tests de adapters.
// TEST_DB_DSN y TEST_REDIS_URL apuntan a instancias ya levantadas y evitan docker.
package containers

import (
	"context"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

const (
	EnvPostgresDSN = "TEST_DB_DSN"
	EnvRedisURL    = "TEST_REDIS_URL"

	postgresImage = "postgres:16-alpine"
	redisImage    = "redis:7-alpine"
)

// PostgresDSN devuelve el DSN de un Postgres listo para usar.
// El container se termina con t.Cleanup; sin docker el test se saltea.
func PostgresDSN(t *testing.T) string {
	t.Helper()
	if dsn := os.Getenv(EnvPostgresDSN); dsn != "" {
		return dsn
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, postgresImage,
		tcpostgres.WithDatabase("gateway"),
		tcpostgres.WithUsername("gateway"),
		tcpostgres.WithPassword("gateway"),
		tcpostgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	return dsn
}

// RedisURL devuelve una URL redis://host:port.
func RedisURL(t *testing.T) string {
	t.Helper()
	if url := os.Getenv(EnvRedisURL); url != "" {
		return url
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := tcredis.Run(ctx, redisImage)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	url, err := ctr.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}
	return url
}
