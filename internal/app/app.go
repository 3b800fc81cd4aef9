package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"cookie-builder/internal/domain"
	"cookie-builder/internal/handlers"
)

type App struct {
	mux    *http.ServeMux
	Env    *handlers.Env
	cfg    Config
	logger *zap.Logger
}

// New собирает приложение: каталог и таблица картинок, сессии, роуты.
func New(ctx context.Context, cfg Config, db *sql.DB, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Дефолты из кода + YAML
	static, found, err := LoadStatic(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.ConfigPath != "" && !found {
		logger.Warn("config file not found, using built-in catalog", zap.String("path", cfg.ConfigPath))
	}

	// 2. БД: засеять, если пусто, и перечитать
	static, err = syncStatic(ctx, db, static, logger)
	if err != nil {
		return nil, err
	}

	// 3. Проверка до старта
	if err := static.Validate(); err != nil {
		return nil, err
	}

	assets := domain.NewAssetTable(static.Assets)
	if missing := assets.Coverage(static.Catalog); len(missing) > 0 {
		logger.Warn("asset table has gaps, these combinations render without an image",
			zap.Int("missing", len(missing)),
			zap.Strings("keys", missing),
		)
	}
	logger.Info("static config loaded",
		zap.String("version", static.Version),
		zap.Int("ingredients", len(static.Catalog.Ingredients)),
		zap.Int("assets", assets.Len()),
	)

	env := &handlers.Env{
		DB:                db,
		Logger:            logger,
		Catalog:           static.Catalog,
		Assets:            assets,
		Sessions:          handlers.NewSessionStore(assets, cfg.SessionTTL, logger),
		AssetPrefix:       "/img/",
		AdminPasswordHash: cfg.AdminPasswordHash,
	}

	mux := http.NewServeMux()
	registerRoutes(mux, env, cfg.AssetDir)

	return &App{
		mux:    mux,
		Env:    env,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (a *App) Router() *http.ServeMux {
	return a.mux
}

// StartSweeper чистит простаивающие сессии, пока не отменят ctx.
func (a *App) StartSweeper(ctx context.Context) {
	interval := a.cfg.SweepInterval
	if interval <= 0 || a.cfg.SessionTTL <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				if n := a.Env.Sessions.Sweep(now); n > 0 {
					a.logger.Debug("sessions expired", zap.Int("count", n))
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
