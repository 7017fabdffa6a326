package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/university/internal/app/models"
	"github.com/yigit/university/internal/config"
	"github.com/yigit/university/internal/pkg/helpers"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database wraps the ORM handle shared by all repositories
type Database struct {
	DB     *gorm.DB
	driver string
}

// NewDatabase opens the configured database and verifies the connection
func NewDatabase(cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.Database.ConnectionString)
	case config.DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(cfg.Database.ConnectionString))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	slow := helpers.ParseDuration(cfg.Database.SlowQuery, 200*time.Millisecond)
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(lgr, slow),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	if cfg.Database.Driver == config.DriverSQLite {
		// One connection keeps in-memory databases alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour))
	}

	database := &Database{DB: gormDB, driver: cfg.Database.Driver}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.Ping(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return database, nil
}

// sqliteDSN makes sure foreign keys are enforced on every connection;
// cascade deletes depend on it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// EnsureCreated creates the schema for every model if it does not exist yet
func (d *Database) EnsureCreated(ctx context.Context) error {
	if err := d.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Driver returns the configured driver name
func (d *Database) Driver() string {
	return d.driver
}

// Close closing method
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
