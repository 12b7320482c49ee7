// Package flash carries one-shot user notices across the redirect that
// follows a mutation, in a signed cookie. An error notice renders until
// the next navigation, a success notice dismisses itself client-side.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

const (
	defaultCookieName = "shop_notice"
	defaultCookiePath = "/"
)

// SuccessTTL is how long a success notice stays on screen before the
// client dismisses it.
const SuccessTTL = 3 * time.Second

// ErrInvalidConfig indicates the manager was initialised with missing or
// invalid options.
var ErrInvalidConfig = errors.New("flash: invalid config")

// Kind classifies a notice for presentation.
type Kind string

const (
	// KindError marks load, transition and validation failures.
	KindError Kind = "error"
	// KindSuccess marks the transient checkout confirmation message.
	KindSuccess Kind = "success"
)

// Notice is a single user-facing message.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Config controls cookie encoding for the flash manager.
type Config struct {
	CookieName   string
	HashKey      []byte
	CookiePath   string
	CookieSecure bool
}

// Manager signs and decodes flash notices carried in cookies.
type Manager struct {
	cfg   Config
	codec *securecookie.SecureCookie
}

// NewManager constructs a Manager using the provided configuration.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.HashKey) == 0 {
		return nil, fmt.Errorf("%w: hash key is required", ErrInvalidConfig)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.CookiePath == "" {
		cfg.CookiePath = defaultCookiePath
	}

	codec := securecookie.New(cfg.HashKey, nil)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{cfg: cfg, codec: codec}, nil
}

// Set queues the notice for the next render. Encoding failures drop the
// notice; a lost message must not break the response it rides on.
func (m *Manager) Set(w http.ResponseWriter, notice Notice) {
	encoded, err := m.codec.Encode(m.cfg.CookieName, notice)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    encoded,
		Path:     m.cfg.CookiePath,
		Secure:   m.cfg.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and expires its cookie so it
// renders exactly once. Tampered or stale cookies read as no notice.
func (m *Manager) Pop(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil {
		return Notice{}, false
	}

	var notice Notice
	decodeErr := m.codec.Decode(m.cfg.CookieName, c.Value, &notice)
	m.expire(w)
	if decodeErr != nil {
		return Notice{}, false
	}
	return notice, true
}

func (m *Manager) expire(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     m.cfg.CookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
