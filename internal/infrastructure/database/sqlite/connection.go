package sqlite

import (
	"countdown/internal/domain/entity"
	"countdown/internal/pkg/logger"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormWriter routes GORM's log output into the application logger.
type gormWriter struct {
	log logger.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Debug(fmt.Sprintf(format, args...))
}

// NewDB opens the sqlite database at dsn and migrates the schema.
func NewDB(dsn string, log logger.Logger) (*gorm.DB, error) {
	newLogger := gormlogger.New(
		gormWriter{log: log},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dsn, err)
	}
	log.Info(fmt.Sprintf("Successfully connected to database: %s", dsn))

	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	log.Info("Database schema migration completed.")
	return db, nil
}

// AutoMigrate automatically migrates the database schema for the defined entities.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Delivery{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	return nil
}

// CloseDB closes the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying *sql.DB: %w", err)
	}
	return sqlDB.Close()
}
