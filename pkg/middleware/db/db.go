package db

import (
	"context"
	"fmt"
	"time"

	"github.com/placentalab/geocatalog/pkg/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

type LogConf struct {
	Level string
}

type Config struct {
	Host    string
	Port    int
	User    string
	PW      string
	DBName  string
	LogConf LogConf
}

// Datastore owns the process-wide gorm handle. Initialized once at startup,
// read by every repo, closed at shutdown.
type Datastore struct {
	db *gorm.DB
}

var datastore *Datastore

func InitPostgres(ctx context.Context, conf *Config) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		conf.Host, conf.Port, conf.User, conf.PW, conf.DBName)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLevel(conf.LogConf.Level)),
	})
	if err != nil {
		logger.Fatalf(ctx, "open postgres fail err: %+v", err)
		return
	}

	if err := gdb.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		logger.Warnf(ctx, "register gorm otel plugin err: %+v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		logger.Fatalf(ctx, "get sql db fail err: %+v", err)
		return
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	datastore = &Datastore{db: gdb}
}

// InitWithInstance installs an existing gorm handle as the global datastore.
// Used by tests running against in-memory sqlite.
func InitWithInstance(gdb *gorm.DB) {
	datastore = &Datastore{db: gdb}
}

func ClosePostgres(ctx context.Context) {
	if datastore == nil {
		return
	}
	sqlDB, err := datastore.db.DB()
	if err != nil {
		logger.Warnf(ctx, "close postgres err: %+v", err)
		return
	}
	_ = sqlDB.Close()
	datastore = nil
}

func DB() *Datastore {
	return datastore
}

// DBIns exposes the raw gorm handle (health checks, migrations).
func (d *Datastore) DBIns() *gorm.DB {
	return d.db
}

// DBWithContext scopes a session to the request context so cancellation and
// trace propagation apply to every query on every exit path.
func (d *Datastore) DBWithContext(ctx context.Context) *gorm.DB {
	return d.db.WithContext(ctx)
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
