package controllers

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/keychain"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/services"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/session"
	"github.com/dmitrijs2005/pencilkeeper/internal/logging"
)

var ErrNoSession = errors.New("not logged in")

// UnauthorizedNotifier is implemented by the transport; it reports every 401.
type UnauthorizedNotifier interface {
	OnUnauthorized(fn func())
}

// AuthController tracks whether a session exists. IsAuthenticated is derived
// from the token store; CurrentUser is only known after Login or Register in
// this process.
type AuthController struct {
	observable

	auth   services.AuthService
	tokens keychain.TokenStore

	authenticated bool
	user          *models.User
}

func NewAuthController(auth services.AuthService, tokens keychain.TokenStore, log logging.Logger) *AuthController {
	c := &AuthController{
		auth:          auth,
		tokens:        tokens,
		authenticated: tokens.HasToken(),
	}
	c.init(log, "auth")
	return c
}

// WatchUnauthorized drops the session state whenever n reports a 401.
func (c *AuthController) WatchUnauthorized(n UnauthorizedNotifier) {
	n.OnUnauthorized(c.CheckAuthStatus)
}

func (c *AuthController) IsAuthenticated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.authenticated
}

func (c *AuthController) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *AuthController) Login(ctx context.Context, email, password string) {
	c.begin()
	user, err := c.auth.Login(ctx, email, password)
	c.finish(ctx, err, func() { c.signIn(user) })
}

func (c *AuthController) Register(ctx context.Context, email, password, confirmation string) {
	c.begin()
	user, err := c.auth.Register(ctx, email, password, confirmation)
	c.finish(ctx, err, func() { c.signIn(user) })
}

// Logout always ends unauthenticated. A server-side failure is only logged.
// signIn trusts the store, not the reply, for whether a session exists.
func (c *AuthController) signIn(user *models.User) {
	c.authenticated = c.tokens.HasToken()
	if c.authenticated {
		c.user = user
	}
}

func (c *AuthController) Logout(ctx context.Context) {
	c.begin()
	if err := c.auth.Logout(ctx); err != nil {
		c.log.Warn(ctx, "server logout failed, local session cleared anyway", "error", err)
	}
	c.finish(ctx, nil, func() {
		c.user = nil
		c.authenticated = false
	})
}

// CheckAuthStatus re-reads the token store, e.g. after another component
// evicted the token.
func (c *AuthController) CheckAuthStatus() {
	has := c.tokens.HasToken()

	c.mu.Lock()
	changed := c.authenticated != has
	c.authenticated = has
	if !has {
		c.user = nil
	}
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// SessionInfo reads the claims of the stored token for display.
func (c *AuthController) SessionInfo() (session.Info, error) {
	token, ok := c.tokens.GetToken()
	if !ok {
		return session.Info{}, ErrNoSession
	}
	return session.Inspect(token)
}
