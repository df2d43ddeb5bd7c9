package database

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"time"

	"lello/internal/config"
	"lello/internal/model"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the configured database and brings its schema up to date.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case DriverPostgres:
		if err := migratePostgres(cfg); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("Database migrations applied")

		gormCfg, err := gormConfig(log)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(postgres.Open(postgresDSN(cfg)), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		log.Info("Connected to database", zap.String("driver", cfg.DBDriver), zap.String("host", cfg.DBHost))
		return db, nil
	case DriverSQLite:
		db, err := openSQLite(cfg.DBPath, log)
		if err != nil {
			return nil, err
		}
		log.Info("Connected to database", zap.String("driver", cfg.DBDriver), zap.String("path", cfg.DBPath))
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// OpenSQLite opens (creating if needed) a sqlite file and auto-migrates every
// model into it. Query logging goes to the global zap logger.
func OpenSQLite(path string) (*gorm.DB, error) {
	return openSQLite(path, zap.L())
}

func openSQLite(path string, log *zap.Logger) (*gorm.DB, error) {
	gormCfg, err := gormConfig(log)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// gormConfig sends gorm's slow query and error reports to log at warn level.
// Lookups that find nothing are expected and not reported.
func gormConfig(log *zap.Logger) (*gorm.Config, error) {
	writer, err := zap.NewStdLogAt(log.Named("gorm"), zapcore.WarnLevel)
	if err != nil {
		return nil, err
	}
	return &gorm.Config{
		Logger: gormlogger.New(writer, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}, nil
}

func postgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}

func migratePostgres(cfg *config.Config) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}

	dbURL := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     cfg.DBHost + ":" + cfg.DBPort,
		Path:     "/" + cfg.DBName,
		RawQuery: "sslmode=disable",
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dbURL.String())
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
