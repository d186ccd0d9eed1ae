package db

import (
	"context"
	"crypto/tls"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-api/internal/config"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

// NewDB opens the pgx-backed pool and wraps it in gorm.
//
// With DB_TLS_SKIP_VERIFY the server certificate chain is not verified: the
// hosted Postgres presents a self-signed chain.
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.DBUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}

	if cfg.DBTLSSkipVerify {
		relaxTLS(connCfg.TLSConfig)
		for _, fb := range connCfg.Fallbacks {
			relaxTLS(fb.TLSConfig)
		}
	}

	sqlDB := stdlib.OpenDB(*connCfg)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	ConfigurePool(sqlDB, cfg)

	return db, nil
}

// relaxTLS keeps TLS on (when sslmode asked for it) but accepts any chain.
func relaxTLS(c *tls.Config) {
	if c == nil {
		return
	}
	c.InsecureSkipVerify = true //nolint:gosec
	c.VerifyPeerCertificate = nil
	c.VerifyConnection = nil
}

func ConfigurePool(sqlDB *sql.DB, cfg *config.Config) {
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
}

// Migrate creates the salon tables for local and test databases. Production
// schema is managed outside the API.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// Now pings the pool and returns the database clock as text.
func Now(ctx context.Context, db *gorm.DB) (string, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return "", err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return "", err
	}

	var now string
	if err := db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		return "", err
	}

	return now, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
