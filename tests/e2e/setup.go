//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"lab-reservation/cmd/bootstrap"
	"lab-reservation/cmd/bootstrap/components"
	"lab-reservation/internal/infra/db"
	"lab-reservation/internal/pkg/config"
	"lab-reservation/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "campus"
	pgPassword = "campuspass"
	pgPort     = nat.Port("5432/tcp")
)

// postgres 17 tuned for throwaway data on tmpfs
var pgTuning = []string{
	"fsync=off",
	"full_page_writes=off",
	"synchronous_commit=off",
	"shared_buffers=256MB",
	"max_connections=200",
	"log_statement=none",
	"log_lock_waits=off",
}

var (
	sharedPG     pgServer
	sharedPGOnce sync.Once
	sharedPGErr  error
)

// pgServer is the one container shared by every suite in the process.
type pgServer struct {
	host string
	port nat.Port
}

func (p pgServer) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, p.host, p.port.Port(), dbName)
}

func (p pgServer) dbConfig(dbName string) config.DBConfig {
	return config.DBConfig{
		Host:     p.host,
		Port:     p.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

func startPostgres(t *testing.T) pgServer {
	t.Helper()

	sharedPGOnce.Do(func() {
		cmd := []string{"postgres"}
		for _, opt := range pgTuning {
			cmd = append(cmd, "-c", opt)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var c testcontainers.Container
		c, sharedPGErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd:   cmd,
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgServer{host: host, port: port}.dsn("postgres")
				}).WithStartupTimeout(60 * time.Second),
				Labels: map[string]string{"purpose": "lab-reservation-e2e"},
			},
			Started: true,
		})
		if sharedPGErr != nil {
			return
		}

		if sharedPG.host, sharedPGErr = c.Host(ctx); sharedPGErr != nil {
			return
		}
		sharedPG.port, sharedPGErr = c.MappedPort(ctx, pgPort)
	})
	require.NoError(t, sharedPGErr, "PostgreSQLコンテナの起動に失敗")
	return sharedPG
}

// createDatabase creates a migrated database private to the calling suite and drops it on cleanup.
func createDatabase(t *testing.T, pg pgServer) config.DBConfig {
	t.Helper()

	dbName := "campus_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := pg.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE serializes on template1, parallel suites can collide
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+dbName)
		if err == nil || attempt == 5 {
			break
		}
		backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
		slog.Warn("データベース作成を再試行中", "attempt", attempt, "error", err.Error(), "retry_wait", backoff)
		time.Sleep(backoff)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用のデータベース接続に失敗しました", "database", dbName, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("テストデータベースの削除に失敗しました", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := pg.dbConfig(dbName)
	require.NoError(t, db.Migrate(dbConfig), "データベースマイグレーションに失敗")
	return dbConfig
}

func e2eConfig(dbConfig config.DBConfig) config.Config {
	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = dbConfig
	// concurrent admission tests lean on serialization retries
	cfg.Admission.MaxTxRetries = 5
	return cfg
}

// startApp runs the production fx graph against the suite database, swapping only config and pool.
func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗しました")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err.Error())
		}
	})
	return router
}

// SharedSuite boots one database and one app per suite; subtests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := startPostgres(t)
	s.Config = e2eConfig(createDatabase(t, pg))

	pool, closePool, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)
	s.DB = pool

	s.Router = startApp(t, s.Config, pool)
	slog.Info("E2E環境の準備が完了しました", "postgres_host", pg.host, "postgres_port", pg.port.Port())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "Failed to reset database state")
}
