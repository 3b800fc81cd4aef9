package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cookie-builder/internal/domain"
)

const adminUser = "admin"

type assetsResponse struct {
	Items   []domain.AssetEntry `json:"items"`
	Missing []string            `json:"missing"` // комбинации с основой, для которых нет картинки
}

// checkAdmin — basic auth, пароль сверяем с bcrypt-хешем из конфига.
func (e *Env) checkAdmin(w http.ResponseWriter, r *http.Request) bool {
	if e.AdminPasswordHash == "" {
		http.Error(w, "admin api disabled", http.StatusForbidden)
		return false
	}
	user, pass, ok := r.BasicAuth()
	if !ok || user != adminUser ||
		bcrypt.CompareHashAndPassword([]byte(e.AdminPasswordHash), []byte(pass)) != nil {
		w.Header().Set("WWW-Authenticate", `Basic realm="cookie-admin"`)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// HandleAdminAssets — курирование таблицы картинок.
//
// GET    -> все строки + список непокрытых комбинаций.
// POST   -> добавить/заменить строку {key, path}.
// DELETE -> удалить строку ?key=...
func (e *Env) HandleAdminAssets(w http.ResponseWriter, r *http.Request) {
	if !e.checkAdmin(w, r) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		e.writeJSON(w, assetsResponse{
			Items:   e.Assets.Entries(),
			Missing: e.Assets.Coverage(e.Catalog),
		})

	case http.MethodPost:
		defer r.Body.Close()

		var entry domain.AssetEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := domain.ValidateEntry(e.Catalog, entry); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// сначала БД, если она есть
		if err := e.UpsertAsset(r.Context(), entry); err != nil {
			e.Logger.Error("upsert asset", zap.String("key", entry.Key), zap.Error(err))
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		e.Assets.Set(entry.Key, entry.Path)
		e.Logger.Info("asset saved", zap.String("key", entry.Key), zap.String("path", entry.Path))

		e.writeJSON(w, entry)

	case http.MethodDelete:
		key := r.URL.Query().Get("key")
		if key == "" {
			http.Error(w, "key is required", http.StatusBadRequest)
			return
		}
		if _, ok := e.Assets.Lookup(key); !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := e.DeleteAsset(r.Context(), key); err != nil {
			e.Logger.Error("delete asset", zap.String("key", key), zap.Error(err))
			http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		e.Assets.Delete(key)
		e.Logger.Info("asset deleted", zap.String("key", key))

		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
