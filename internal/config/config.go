package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	SERVER_PORT       string
	LOG_LEVEL         string
	DATABASE_URL      string
	SQLITE_PATH       string
	KAFKA_ADDRESS     string
	CHECKOUT_DELAY_MS int
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		SERVER_PORT:       getDefault("SERVER_PORT", "8080"),
		LOG_LEVEL:         getDefault("LOG_LEVEL", "info"),
		DATABASE_URL:      os.Getenv("DATABASE_URL"),
		SQLITE_PATH:       getDefault("SQLITE_PATH", "shop.db"),
		KAFKA_ADDRESS:     os.Getenv("KAFKA_ADDRESS"),
		CHECKOUT_DELAY_MS: getIntDefault("CHECKOUT_DELAY_MS", 1500),
	}

	return config, nil
}

func getDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getIntDefault(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Notice: %s is not an integer, using default %d", name, def)
	}
	return def
}

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// InitDB opens postgres when DATABASE_URL is set and otherwise falls back
// to an embedded sqlite file, which stands in for the browser's local
// storage in the original storefront.
func (c *Config) InitDB(ctx context.Context) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		PrepareStmt: true,
		NowFunc:     func() time.Time { return time.Now().UTC() },
	}

	if c.DATABASE_URL == "" {
		db, err := gorm.Open(sqlite.Open(c.SQLITE_PATH), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", c.SQLITE_PATH, err)
		}
		return db, nil
	}

	db, err := gorm.Open(postgres.Open(c.DATABASE_URL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
