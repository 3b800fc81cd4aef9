package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"cookie-builder/internal/domain"
)

// Config — настройки процесса из переменных окружения
type Config struct {
	Addr              string
	DatabaseURL       string        // пусто — без БД, всё в памяти
	ConfigPath        string        // YAML с каталогом и таблицей картинок
	AssetDir          string        // откуда раздаём /img/
	AdminPasswordHash string        // bcrypt; пусто — админка выключена
	SessionTTL        time.Duration // простой сессии до удаления
	SweepInterval     time.Duration
	LogDev            bool
}

// ConfigFromEnv читает конфиг из env, с дефолтами для локального запуска.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Addr:              ":3040",
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		ConfigPath:        os.Getenv("COOKIE_CONFIG"),
		AssetDir:          "./static",
		AdminPasswordHash: os.Getenv("COOKIE_ADMIN_PASSWORD_HASH"),
		SessionTTL:        2 * time.Hour,
		SweepInterval:     time.Minute,
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Addr = ":" + p
	}
	if d := os.Getenv("COOKIE_ASSET_DIR"); d != "" {
		cfg.AssetDir = d
	}
	if s := os.Getenv("COOKIE_SESSION_TTL"); s != "" {
		ttl, err := time.ParseDuration(s)
		if err != nil {
			return Config{}, fmt.Errorf("COOKIE_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = ttl
	}
	if s := os.Getenv("COOKIE_LOG_DEV"); s != "" {
		dev, err := strconv.ParseBool(s)
		if err != nil {
			return Config{}, fmt.Errorf("COOKIE_LOG_DEV: %w", err)
		}
		cfg.LogDev = dev
	}
	return cfg, nil
}

// FileConfig — содержимое YAML-файла. Любая секция может отсутствовать.
type FileConfig struct {
	Version     string              `yaml:"version"`
	Ingredients []domain.Ingredient `yaml:"ingredients,omitempty"`
	Assets      []domain.AssetEntry `yaml:"assets,omitempty"`
}

// Static — каталог и таблица картинок после слияния всех источников
type Static struct {
	Version string
	Catalog *domain.Catalog
	Assets  []domain.AssetEntry
}

// DefaultStatic — то, что зашито в код
func DefaultStatic() Static {
	return Static{
		Version: "builtin",
		Catalog: domain.DefaultCatalog(),
		Assets:  domain.DefaultAssetEntries(),
	}
}

// readYAML загружает файл. Отсутствующий файл — пустой конфиг без ошибки.
func readYAML(path string) (FileConfig, bool, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return FileConfig{}, false, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, true, nil
}

// merge: непустые секции файла заменяют дефолтные целиком.
// Свой каталог без своей таблицы — таблица пустая.
func merge(s Static, fc FileConfig) Static {
	out := s
	if fc.Version != "" {
		out.Version = fc.Version
	}
	if len(fc.Ingredients) > 0 {
		out.Catalog = &domain.Catalog{Ingredients: append([]domain.Ingredient(nil), fc.Ingredients...)}
		// встроенная таблица ссылается на встроенный каталог; новый каталог начинает с пустой
		out.Assets = nil
	}
	if len(fc.Assets) > 0 {
		out.Assets = append([]domain.AssetEntry(nil), fc.Assets...)
	}
	return out
}

// LoadStatic: дефолты <- YAML (если путь задан и файл есть).
func LoadStatic(path string) (Static, bool, error) {
	s := DefaultStatic()
	if path == "" {
		return s, false, nil
	}
	fc, found, err := readYAML(path)
	if err != nil {
		return Static{}, false, err
	}
	return merge(s, fc), found, nil
}

// Validate проверяет каталог и таблицу вместе.
func (s Static) Validate() error {
	if err := domain.ValidateCatalog(s.Catalog); err != nil {
		return err
	}
	return domain.ValidateTable(s.Catalog, s.Assets)
}
