package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/client"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/endpoint"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/keychain"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/models"
)

// AuthService defines the session operations.
//
// Contract:
//   - Login / Register: on success the returned token is saved to the store
//     before the user is returned; on failure the store is left untouched.
//   - Logout: asks the server to end the session, then removes the local
//     token whatever the server said. The server error is returned so the
//     caller can log it.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, confirmation string) (*models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	tokens keychain.TokenStore
}

func NewAuthService(c client.Client, tokens keychain.TokenStore) AuthService {
	return &authService{client: c, tokens: tokens}
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.AuthResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := a.client.Do(ctx, endpoint.Login{}, req, &resp); err != nil {
		return nil, err
	}
	return a.persist(resp)
}

func (a *authService) Register(ctx context.Context, email, password, confirmation string) (*models.User, error) {
	var resp models.AuthResponse
	req := models.RegisterRequest{Email: email, Password: password, PasswordConfirmation: confirmation}
	if err := a.client.Do(ctx, endpoint.Register{}, req, &resp); err != nil {
		return nil, err
	}
	return a.persist(resp)
}

func (a *authService) persist(resp models.AuthResponse) (*models.User, error) {
	if resp.Token == "" {
		return nil, models.ErrMissingToken
	}
	if err := a.tokens.SaveToken(resp.Token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	user := resp.User
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	serverErr := a.client.Do(ctx, endpoint.Logout{}, nil, nil)
	if err := a.tokens.DeleteToken(); err != nil && serverErr == nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return serverErr
}
