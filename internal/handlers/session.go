package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"cookie-builder/internal/domain"
)

const sessionCookie = "cookie_session"

// Session — один покупатель. События одного покупателя выполняются строго по очереди.
type Session struct {
	ID string

	mu       sync.Mutex
	cfg      *domain.Configurator
	lastSeen time.Time
}

// Do выполняет одно событие под замком сессии.
func (s *Session) Do(fn func(c *domain.Configurator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	fn(s.cfg)
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore — сессии в памяти, по id из куки
type SessionStore struct {
	mu     sync.Mutex
	items  map[string]*Session
	ttl    time.Duration
	assets *domain.AssetTable
	logger *zap.Logger
}

// NewSessionStore создаёт пустое хранилище.
func NewSessionStore(assets *domain.AssetTable, ttl time.Duration, logger *zap.Logger) *SessionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionStore{
		items:  make(map[string]*Session),
		ttl:    ttl,
		assets: assets,
		logger: logger,
	}
}

// NewSessionID — простой генератор id сессии
func NewSessionID() string {
	const size = 16
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		// в крайнем случае — fallback, чтобы не паниковать
		return time.Now().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(b)
}

// Lookup ищет сессию по куке, nil если её нет.
func (st *SessionStore) Lookup(r *http.Request) *Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.items[c.Value]
}

// Ensure возвращает сессию запроса, при необходимости создаёт новую и ставит куку.
func (st *SessionStore) Ensure(w http.ResponseWriter, r *http.Request) *Session {
	if s := st.Lookup(r); s != nil {
		return s
	}

	s := &Session{
		ID:       NewSessionID(),
		cfg:      domain.NewConfigurator(st.assets, st.logger),
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.items[s.ID] = s
	st.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	st.logger.Debug("session created", zap.String("session", s.ID))
	return s
}

// Sweep удаляет сессии, простаивающие дольше ttl. Возвращает число удалённых.
func (st *SessionStore) Sweep(now time.Time) int {
	if st.ttl <= 0 {
		return 0
	}

	// порядок замков: store -> session; Do не должен трогать store
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, s := range st.items {
		if now.Sub(s.idleSince()) > st.ttl {
			delete(st.items, id)
			n++
		}
	}
	return n
}

// Len — сколько сессий сейчас в памяти
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.items)
}
