package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"cookie-builder/internal/domain"
)

type selectRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// selectFromCatalog — событие "нажали кнопку ингредиента".
// Имя и цену берём из каталога, клиент присылает только категорию и id.
func (e *Env) selectFromCatalog(s *Session, req selectRequest) (domain.View, error) {
	cat, err := domain.ParseCategory(req.Type)
	if err != nil {
		return domain.View{}, err
	}
	ing, err := e.Catalog.Find(cat, req.ID)
	if err != nil {
		return domain.View{}, err
	}

	var v domain.View
	s.Do(func(c *domain.Configurator) {
		v, err = c.SelectIngredient(ing)
	})
	if err == nil {
		e.Logger.Debug("ingredient selected",
			zap.String("session", s.ID),
			zap.String("type", string(cat)),
			zap.String("id", ing.ID),
			zap.String("total", v.Price),
		)
	}
	return v, err
}

func (e *Env) selectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory), errors.Is(err, domain.ErrUnknownIngredient):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (e *Env) reset(s *Session) domain.View {
	var v domain.View
	s.Do(func(c *domain.Configurator) {
		v = c.Reset()
	})
	return v
}

func (e *Env) order(s *Session) (domain.View, domain.OrderResult) {
	var (
		v   domain.View
		res domain.OrderResult
	)
	s.Do(func(c *domain.Configurator) {
		res = c.Order()
		v = c.Refresh()
	})
	e.Logger.Info("order requested",
		zap.String("session", s.ID),
		zap.Bool("ok", res.OK),
		zap.String("total", v.Price),
	)
	return v, res
}

func (e *Env) current(s *Session) domain.View {
	var v domain.View
	s.Do(func(c *domain.Configurator) {
		v = c.Refresh()
	})
	return v
}

// --- HTML ---

// GET / — страница конфигуратора
func (e *Env) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s := e.Sessions.Ensure(w, r)
	e.renderPage(w, e.current(s), "")
}

// POST /select (форма: type, id)
func (e *Env) HandleSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form: "+err.Error(), http.StatusBadRequest)
		return
	}
	s := e.Sessions.Ensure(w, r)
	if _, err := e.selectFromCatalog(s, selectRequest{Type: r.PostForm.Get("type"), ID: r.PostForm.Get("id")}); err != nil {
		e.selectError(w, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// POST /reset
func (e *Env) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	e.reset(e.Sessions.Ensure(w, r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// POST /order — показываем alert прямо на странице, состояние не трогаем
func (e *Env) HandleOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	v, res := e.order(e.Sessions.Ensure(w, r))
	e.renderPage(w, v, res.Message)
}

// --- JSON API ---

// GET /api/cookie
func (e *Env) HandleCookie(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	e.writeJSON(w, e.current(e.Sessions.Ensure(w, r)))
}

// POST /api/cookie/select
func (e *Env) HandleCookieSelect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	v, err := e.selectFromCatalog(e.Sessions.Ensure(w, r), req)
	if err != nil {
		e.selectError(w, err)
		return
	}
	e.writeJSON(w, v)
}

// POST /api/cookie/reset
func (e *Env) HandleCookieReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	e.writeJSON(w, e.reset(e.Sessions.Ensure(w, r)))
}

// POST /api/cookie/order
func (e *Env) HandleCookieOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_, res := e.order(e.Sessions.Ensure(w, r))
	e.writeJSON(w, res)
}

// GET /api/catalog
func (e *Env) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	e.writeJSON(w, e.Catalog)
}
