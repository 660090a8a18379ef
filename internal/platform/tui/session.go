package tui

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shop/internal/api"
	"github.com/vovakirdan/tui-shop/internal/catalog"
	"github.com/vovakirdan/tui-shop/internal/config"
	"github.com/vovakirdan/tui-shop/internal/core"
	"github.com/vovakirdan/tui-shop/internal/storage"
)

// Session holds the services one storefront user works with. A local run
// has one session; the SSH server creates one per connection.
type Session struct {
	Client  *api.Client
	Store   *storage.Store // nil when the database could not be opened
	Owner   string
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Offline, when non-nil, replaces the backend catalog. Cart and login
	// still go to the backend.
	Offline *catalog.File

	// names caches product names for the cart page. Only touched from
	// Update, so it needs no lock.
	names map[string]string
}

var discardLogger = log.New(io.Discard)

func (s *Session) logger() *log.Logger {
	if s.Logger == nil {
		return discardLogger
	}
	return s.Logger
}

// Token returns the stored access token, or "" when signed out. Storage
// failures are logged and treated as signed out.
func (s *Session) Token() string {
	if s.Store == nil {
		return ""
	}
	token, err := s.Store.Token(s.Owner)
	if err != nil {
		s.logger().Warn("could not read token", "owner", s.Owner, "error", err)
		return ""
	}
	return token
}

// SignedIn reports whether a token is stored for the session owner.
func (s *Session) SignedIn() bool {
	return s.Token() != ""
}

func (s *Session) saveToken(token string) error {
	if s.Store == nil {
		return nil
	}
	return s.Store.SaveToken(s.Owner, token)
}

func (s *Session) clearToken() {
	if s.Store == nil {
		return
	}
	if err := s.Store.ClearToken(s.Owner); err != nil {
		s.logger().Warn("could not clear token", "owner", s.Owner, "error", err)
	}
}

func (s *Session) recordView(p catalog.Product) {
	if s.Store == nil {
		return
	}
	if err := s.Store.RecordView(s.Owner, p.ID, p.Name); err != nil {
		s.logger().Warn("could not record view", "product", p.ID, "error", err)
	}
}

func (s *Session) rememberNames(products ...catalog.Product) {
	if s.names == nil {
		s.names = make(map[string]string)
	}
	for _, p := range products {
		s.names[p.ID] = p.Name
	}
}

// productName returns the cached name for id, or id itself.
func (s *Session) productName(id string) string {
	if name, ok := s.names[id]; ok && name != "" {
		return name
	}
	return id
}

// requestContext bounds one backend call by the configured timeout.
func (s *Session) requestContext() (context.Context, context.CancelFunc) {
	timeout := s.Config.API.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
