package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Options selects the store the application talks to
type Options struct {
	// Path of the local SQLite file (ignored when TursoURL is set)
	Path string
	// Remote Turso database, e.g. libsql://practice.turso.io
	TursoURL   string
	TursoToken string
	// Environment controls the gorm log level
	Environment string
}

// Config returns the gorm configuration shared by the app and its tests.
// Timestamps are always written in UTC so that text comparisons in SQLite
// order them correctly, and driver errors are translated into gorm's
// ErrDuplicatedKey / ErrForeignKeyViolated.
func Config(environment string) *gorm.Config {
	// Determine log level based on environment
	logLevel := logger.Info
	switch environment {
	case "production":
		logLevel = logger.Warn
	case "test":
		logLevel = logger.Silent
	}

	return &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Dialector builds the gorm dialector for the given options
func Dialector(opts Options) gorm.Dialector {
	if opts.TursoURL != "" {
		dsn := opts.TursoURL
		if opts.TursoToken != "" {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "authToken=" + opts.TursoToken
		}
		return sqlite.New(sqlite.Config{DriverName: "libsql", DSN: dsn})
	}

	// WAL for concurrent readers, foreign keys enforced on every connection
	return sqlite.Open(LocalDSN(opts.Path))
}

// LocalDSN appends the connection pragmas used for local SQLite files
func LocalDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000"
}

// Initialize sets up the database connection
func Initialize(opts Options) error {
	var err error

	DB, err = gorm.Open(Dialector(opts), Config(opts.Environment))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := DB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if opts.TursoURL != "" {
		zap.L().Info("Database connection established (Turso)")
	} else {
		zap.L().Info("Database connection established (WAL mode enabled)", zap.String("path", opts.Path))
	}
	return nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(models ...interface{}) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	err := DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	zap.L().Info("Database migrations completed", zap.Int("models", len(models)))
	return nil
}

// Ping checks that the store is reachable
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
