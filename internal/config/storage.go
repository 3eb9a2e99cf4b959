package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"amps-backend/internal/adapters/persistence/blob"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenBlobStore opens the blob store backend selected by STORAGE_DRIVER
func OpenBlobStore(cfg *Config) (blob.Store, error) {
	switch cfg.Storage.Driver {
	case "file":
		store, err := blob.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open data directory: %w", err)
		}
		log.Printf("✅ Blob store ready [file: %s]", cfg.Storage.DataDir)
		return store, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Printf("✅ Blob store ready [redis: %s]", cfg.Storage.RedisAddr)
		return blob.NewRedisStore(client), nil

	case "mysql":
		db, err := connectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		store, err := blob.NewGormStore(db)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate blobs table: %w", err)
		}
		log.Printf("✅ Blob store ready [mysql: %s:%s/%s]",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER: '%s' (must be 'file', 'redis' or 'mysql')", cfg.Storage.Driver)
	}
}

// connectDatabase establishes connection to MySQL database
func connectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := buildDSN(cfg.Database)

	var gormLogger logger.Interface
	if cfg.IsDev() {
		gormLogger = logger.Default.LogMode(logger.Info)
	} else {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// buildDSN returns the database connection string
func buildDSN(d DatabaseConfig) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.DBName,
	)
}
