package app

import (
	"net/http"

	"cookie-builder/internal/handlers"
)

func registerRoutes(mux *http.ServeMux, env *handlers.Env, assetDir string) {
	// --- API ---
	mux.Handle("/api/cookie", handlers.WithCORS(http.HandlerFunc(env.HandleCookie)))
	mux.Handle("/api/cookie/select", handlers.WithCORS(http.HandlerFunc(env.HandleCookieSelect)))
	mux.Handle("/api/cookie/reset", handlers.WithCORS(http.HandlerFunc(env.HandleCookieReset)))
	mux.Handle("/api/cookie/order", handlers.WithCORS(http.HandlerFunc(env.HandleCookieOrder)))
	mux.Handle("/api/catalog", handlers.WithCORS(http.HandlerFunc(env.HandleCatalog)))

	// курирование таблицы картинок
	mux.Handle("/api/admin/assets", handlers.WithCORS(http.HandlerFunc(env.HandleAdminAssets)))

	// --- Страница и формы ---
	mux.HandleFunc("/select", env.HandleSelect)
	mux.HandleFunc("/reset", env.HandleReset)
	mux.HandleFunc("/order", env.HandleOrder)

	// картинки из таблицы: /img/MG/redvelvet.jpg -> {assetDir}/MG/redvelvet.jpg
	mux.Handle("/img/", http.StripPrefix("/img/", http.FileServer(http.Dir(assetDir))))

	mux.HandleFunc("/", env.HandlePage)
}
