package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"pizzeria/cmd"
	"pizzeria/internal/adapters/out/postgres/migrations"
	"pizzeria/internal/pkg/logging"

	"github.com/jmoiron/sqlx"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// app holds what every command needs once config is loaded and the database is open.
type app struct {
	cfg    cmd.Config
	logger *slog.Logger
	gormDB *gorm.DB
	readDB *sqlx.DB
	root   cmd.CompositionRoot

	closers []func() error
}

func loadConfigAndLogger() (cmd.Config, *slog.Logger, func() error, error) {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, os.Stdout)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}
	logger = logger.With("service", cfg.App.Name)
	slog.SetDefault(logger)

	return cfg, logger, closeLog, nil
}

func bootstrap() (*app, error) {
	cfg, logger, closeLog, err := loadConfigAndLogger()
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(cfg.Database.DSN()); err != nil {
			return nil, errors.Join(fmt.Errorf("migrate: %w", err), a.close())
		}
	}

	gormDB, err := gorm.Open(gormpostgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("connect to database: %w", err), a.close())
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, errors.Join(err, a.close())
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	a.closers = append(a.closers, sqlDB.Close)

	a.gormDB = gormDB
	a.readDB = sqlx.NewDb(sqlDB, "pgx")
	a.root = cmd.NewCompositionRoot(cfg, gormDB, a.readDB, logger)
	return a, nil
}

// close releases resources in reverse order of acquisition.
func (a *app) close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, a.closers[i]())
	}
	a.closers = nil
	return err
}
