package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	Logger *zap.Logger
	// LogLevel follows LOG_LEVEL: "debug" logs every statement, anything
	// else only slow queries and errors.
	LogLevel string
}

func OpenGorm(dsn string, o Options) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn), o)
}

// OpenGormWithDialector is OpenGorm for an arbitrary dialector (sqlite and
// sqlmock in tests).
func OpenGormWithDialector(dial gorm.Dialector, o Options) (*gorm.DB, error) {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	cfg := &gorm.Config{
		Logger: logger.New(zap.NewStdLog(o.Logger.Named("gorm")), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(o.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
		// map driver errors to gorm.ErrDuplicatedKey and friends
		TranslateError:       true,
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	o.Logger.Info("gorm: connected", zap.String("dialect", dial.Name()))
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.Info
	case "silent", "off":
		return logger.Silent
	case "error":
		return logger.Error
	default:
		return logger.Warn
	}
}
