package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the datasource described by res and verifies it with a ping.
func Connect(res Resource) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch res.Driver {
	case DriverMySQL:
		dialector = mysql.Open(res.DSN)
	case DriverSQLite:
		dialector = sqlite.Open(res.DSN)
	default:
		return nil, fmt.Errorf("resource %s: unsupported driver %q", res.Name, res.Driver)
	}
	return open(dialector, res)
}

func open(dialector gorm.Dialector, res Resource) (*gorm.DB, error) {
	timeout := res.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	// Suppress GORM logging; failures surface through the registry.
	gormConfig := &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("resource %s: failed to connect to database: %w", res.Name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resource %s: failed to get sql.DB: %w", res.Name, err)
	}

	maxIdle, maxOpen := res.MaxIdleConns, res.MaxOpenConns
	if maxIdle <= 0 {
		maxIdle = 10
	}
	if maxOpen <= 0 {
		maxOpen = 100
	}
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("resource %s: failed to ping database: %w", res.Name, err)
	}

	return db, nil
}
