package configs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func (e ENV) DSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBPort,
		e.DBName,
	)
}

// GormConfig is shared by the MySQL connection and the in-memory test database
// so both translate driver errors the same way.
func GormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

func OpenConnection(env ENV, logger *zap.Logger) (*gorm.DB, error) {
	maxRetries := env.DBMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	retryDelay := time.Duration(env.DBRetryDelay) * time.Second

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("connecting to database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.String("host", env.DBHost),
			zap.String("db_name", env.DBName),
		)
		db, err := gorm.Open(mysql.Open(env.DSN()), GormConfig())
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("database connection established")
					return db, nil
				}
			}
			lastErr = pingErr
			logger.Warn("failed to ping database", zap.Error(pingErr), zap.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			logger.Warn("failed to open gorm connection", zap.Error(err), zap.Duration("retry_in", retryDelay))
		}

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
