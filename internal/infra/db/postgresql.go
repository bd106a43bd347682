// Package db bootstraps the PostgreSQL connection used by the repositories.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pocket-ledger/backend/config"
)

const (
	connectPingTimeout = 5 * time.Second
	healthPingTimeout  = 2 * time.Second
)

// Postgres wraps the gorm connection together with its pool settings.
type Postgres struct {
	conn *gorm.DB
}

// Connect opens the PostgreSQL connection, applies the pool limits from the
// config and verifies the connection with a ping.
func Connect(cfg *config.DatabaseConfig) (*Postgres, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pg := &Postgres{conn: conn}
	if err := pg.ping(connectPingTimeout); err != nil {
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	slog.Info("Connected to postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return pg, nil
}

func (p *Postgres) ping(timeout time.Duration) error {
	pool, err := p.conn.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return pool.PingContext(ctx)
}

// Conn returns the gorm handle.
func (p *Postgres) Conn() *gorm.DB {
	return p.conn
}

// Healthy reports whether the database currently answers pings.
func (p *Postgres) Healthy() bool {
	if err := p.ping(healthPingTimeout); err != nil {
		slog.Error("Postgres health ping failed", "error", err)
		return false
	}
	return true
}

// Migrate runs gorm auto-migration for the given models.
func (p *Postgres) Migrate(models ...any) error {
	if err := p.conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	pool, err := p.conn.DB()
	if err != nil {
		return fmt.Errorf("failed to access connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("failed to close connection pool: %w", err)
	}

	slog.Info("Postgres connection closed")
	return nil
}
