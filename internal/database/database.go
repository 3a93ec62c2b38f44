package database

import (
	"context"
	"fmt"
	"time"

	"movie-admin/internal/config"
	"movie-admin/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

type Database struct {
	*gorm.DB
	config config.DatabaseConfig
}

// Connect opens the PostgreSQL database described by cfg.
func Connect(cfg config.DatabaseConfig) (*Database, error) {
	dsn := cfg.DSN() + " TimeZone=UTC connect_timeout=10"

	return Open(postgres.Open(dsn), cfg)
}

// Open connects through an arbitrary dialector, configures the pool and
// migrates the content schema when cfg.AutoMigrate is set.
func Open(dialector gorm.Dialector, cfg config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(dialector, NewGormConfig(cfg))
	if err != nil {
		logrus.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Failed to get underlying sql.DB")
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		logrus.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	logrus.WithField("dialect", db.Dialector.Name()).Info("Database connection established successfully")

	database := &Database{
		DB:     db,
		config: cfg,
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(); err != nil {
			logrus.WithError(err).Error("Failed to run auto migration")
			return nil, fmt.Errorf("failed to run auto migration: %w", err)
		}
	}

	return database, nil
}

// New wraps an already opened gorm handle.
func New(db *gorm.DB, cfg config.DatabaseConfig) *Database {
	return &Database{DB: db, config: cfg}
}

// NewGormConfig builds the gorm configuration shared by every dialect.
// Tables are singular and live in cfg.Schema when one is set.
func NewGormConfig(cfg config.DatabaseConfig) *gorm.Config {
	naming := schema.NamingStrategy{SingularTable: true}
	if cfg.Schema != "" {
		naming.TablePrefix = cfg.Schema + "."
	}

	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		NamingStrategy: naming,
		TranslateError: true,
	}
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	if d.config.QueryTimeout <= 0 {
		return 10 * time.Second
	}
	return d.config.QueryTimeout
}

func (d *Database) Schema() string {
	return d.config.Schema
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates the schema namespace if needed and migrates every model.
func (d *Database) Migrate() error {
	logrus.WithField("schema", d.config.Schema).Info("Running auto migration...")

	if d.config.Schema != "" && d.DB.Dialector.Name() == "postgres" {
		stmt := fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %q", d.config.Schema)
		if err := d.DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create schema %s: %w", d.config.Schema, err)
		}
	}

	err := d.DB.AutoMigrate(
		&models.Genre{},
		&models.Person{},
		&models.FilmWork{},
		&models.GenreFilmWork{},
		&models.PersonFilmWork{},
	)
	if err != nil {
		return err
	}

	logrus.Info("Auto migration completed successfully")
	return nil
}
