package db

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testPool — shared pool for repository tests. Nil when no container could be started.
var testPool *pgxpool.Pool

// testDSN — connection string of the test container. Empty when testPool is nil.
var testDSN string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		// Docker unavailable: repository tests skip themselves.
		log.Printf("starting postgres container: %v", err)
		os.Exit(m.Run())
	}

	code := func() int {
		defer func() { _ = container.Terminate(ctx) }()

		host, err := container.Host(ctx)
		if err != nil {
			log.Fatalf("getting container host: %v", err)
		}
		port, err := container.MappedPort(ctx, "5432")
		if err != nil {
			log.Fatalf("getting container port: %v", err)
		}
		dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

		if err := RunMigrations(ctx, dsn); err != nil {
			log.Fatalf("running migrations: %v", err)
		}

		database, err := New(ctx, dsn)
		if err != nil {
			log.Fatalf("connecting to test db: %v", err)
		}
		defer database.Close()
		testPool = database.Pool()
		testDSN = dsn

		return m.Run()
	}()
	os.Exit(code)
}

// setupTestDB returns the shared pool with an empty builds table.
func setupTestDB(tb testing.TB) *pgxpool.Pool {
	tb.Helper()
	if testPool == nil {
		tb.Skip("postgres container not available")
	}

	if _, err := testPool.Exec(context.Background(), "TRUNCATE builds"); err != nil {
		tb.Fatalf("truncating builds: %v", err)
	}
	return testPool
}
