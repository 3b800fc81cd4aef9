package handlers

import (
	"context"
	"fmt"

	"cookie-builder/internal/domain"
)

// UpsertAsset сохраняет строку таблицы картинок. Без БД — ничего не делает.
func (e *Env) UpsertAsset(ctx context.Context, a domain.AssetEntry) error {
	if e.DB == nil {
		return nil
	}

	_, err := e.DB.ExecContext(ctx, `
INSERT INTO cookie_assets (key, path)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE
  SET path = EXCLUDED.path,
      updated_at = now();
`,
		a.Key,
		a.Path,
	)
	if err != nil {
		return fmt.Errorf("upsert asset %s: %w", a.Key, err)
	}
	return nil
}

// DeleteAsset удаляет строку по ключу.
func (e *Env) DeleteAsset(ctx context.Context, key string) error {
	if e.DB == nil {
		return nil
	}
	if _, err := e.DB.ExecContext(ctx, `DELETE FROM cookie_assets WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete asset %s: %w", key, err)
	}
	return nil
}
