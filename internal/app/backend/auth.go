package backend

import (
	"context"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterParams struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}

func (c *Client) Login(ctx context.Context, params LoginParams) (models.AuthResult, error) {
	return call[models.AuthResult](ctx, c, http.MethodPost, "/auth/token", "", params)
}

func (c *Client) Register(ctx context.Context, params RegisterParams) (models.UserProfile, error) {
	return call[models.UserProfile](ctx, c, http.MethodPost, "/users", "", params)
}

// Refresh exchanges a refresh token for a fresh token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	body := map[string]string{"refreshToken": refreshToken}
	return call[models.TokenPair](ctx, c, http.MethodPost, "/auth/refresh", "", body)
}

// Profile fetches the authenticated user's own profile.
func (c *Client) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	profile, err := call[models.UserProfile](ctx, c, http.MethodGet, "/users/my-info", token, nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout invalidates the refresh token backend-side. The local session
// is cleared regardless of the outcome.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return c.do(ctx, http.MethodPost, "/auth/logout", "", body, nil)
}

type UpdateProfileParams struct {
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (c *Client) UpdateProfile(ctx context.Context, token string, params UpdateProfileParams) (*models.UserProfile, error) {
	profile, err := call[models.UserProfile](ctx, c, http.MethodPut, "/users/my-info", token, params)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type ChangePasswordParams struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, token string, params ChangePasswordParams) error {
	return c.do(ctx, http.MethodPut, "/users/my-password", token, params, nil)
}
