// internal/handlers/common.go

package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"cookie-builder/internal/domain"
)

// Env хранит зависимости для хендлеров.
type Env struct {
	DB     *sql.DB // nil — работаем только в памяти
	Logger *zap.Logger

	Catalog  *domain.Catalog
	Assets   *domain.AssetTable
	Sessions *SessionStore

	// префикс, под которым раздаются картинки из таблицы (/img/)
	AssetPrefix string

	// bcrypt-хеш пароля админки; пустой — админка выключена
	AdminPasswordHash string
}

// writeJSON — простой helper для JSON-ответов
func (e *Env) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WithCORS — простой CORS-мидлвар для dev.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
