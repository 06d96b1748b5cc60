package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"stockfolio/internal/logger"
)

// ErrNoMigrations is returned by the migration methods of a Manager that was
// built around an existing connection.
var ErrNoMigrations = errors.New("migrations are not configured for this manager")

// Manager handles database operations
type Manager struct {
	db        *gorm.DB
	dbURL     string
	sourceURL string
}

// NewManager creates a new database manager
func NewManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, dbURL: config.URL(), sourceURL: config.SourceURL()}, nil
}

// NewManagerFromDB wraps an open connection. Migrations are unavailable on
// such a manager; the schema is expected to exist already.
func NewManagerFromDB(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

func (m *Manager) migrator() (*migrate.Migrate, func(), error) {
	if m.dbURL == "" {
		return nil, nil, ErrNoMigrations
	}
	mig, err := migrate.New(m.sourceURL, m.dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	closeFn := func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}
	return mig, closeFn, nil
}

// Up applies all pending migrations.
func (m *Manager) Up() error {
	logger.Get().Info("Running database migrations...")

	mig, closeFn, err := m.migrator()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// Down rolls back the given number of migrations.
func (m *Manager) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("invalid step count %d", steps)
	}

	mig, closeFn, err := m.migrator()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration down failed: %w", err)
	}
	logger.Get().Infof("Rolled back %d migration(s)", steps)
	return nil
}

// Version returns the current migration version and whether it is dirty.
func (m *Manager) Version() (uint, bool, error) {
	mig, closeFn, err := m.migrator()
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
