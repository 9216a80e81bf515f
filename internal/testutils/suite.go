package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "salesdesk"
	pgPassword = "salesdesk"
	pgDatabase = "salesdesk_test"
)

// Tables owned by the application, children first. Truncated between tests.
var crmTables = []string{
	"notification_bookmarks",
	"notification_mutes",
	"notification_counters",
	"notifications",
	"sequence_assignments",
	"sequence_enrollments",
	"sequence_steps",
	"sequence_versions",
	"sequences",
	"contacts",
	"invites",
	"memberships",
	"organizations",
	"user_preferences",
}

// One Postgres container serves every suite in the test binary
var (
	containerOnce sync.Once
	containerErr  error
	pool          *dockertest.Pool
	pgResource    *dockertest.Resource
	sharedDB      *gorm.DB
	sharedConfig  *config.Config
)

// BaseTestSuite gives repository suites a migrated database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use and returns a
// suite bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start test postgres: %v", containerErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. Call it
// from TestMain once every suite has run.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if pool == nil || pgResource == nil {
		return
	}
	log.Printf("Purging test container %s", pgResource.Container.Name)
	if err := pool.Purge(pgResource); err != nil {
		log.Printf("WARN: could not purge test container: %v", err)
	}
	pgResource = nil
	pool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every application table in one statement
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	present := make([]string, 0, len(crmTables))
	for _, t := range crmTables {
		if m.HasTable(t) {
			present = append(present, `"`+t+`"`)
		}
	}
	if len(present) == 0 {
		return
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(present, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func startPostgres() error {
	p, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	p.MaxWait = 2 * time.Minute
	pool = p

	resource, err := p.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource
	// Reap the container even if TestMain never gets to clean up
	_ = resource.Expire(600)

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	err = p.Retry(func() error {
		conn, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer conn.Close()
		if err := conn.Ping(); err != nil {
			return err
		}

		// Initialize migrates the schema and installs the counter trigger and feed view
		db, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres did not become ready: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:    "test",
		Port:           "8080",
		LogLevel:       "debug",
		DatabaseURL:    dsn,
		JWTSecret:      "test-jwt-secret",
		AppBaseURL:     "http://localhost:3000",
		InviteTTLHours: 168,
	}

	log.Printf("Test postgres ready at %s", dsn)
	return nil
}
