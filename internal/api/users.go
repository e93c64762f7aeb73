package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vexr-systems/fieldserve/internal/session"
	"go.uber.org/zap"
)

// User is a dashboard user record
type User struct {
	ID     string  `json:"_id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Role   string  `json:"role"`
	Region *Region `json:"region"`
}

// UsersService talks to the /users endpoints
type UsersService struct {
	client *Client
	logger *zap.Logger
}

// NewUsersService creates a new users service
func NewUsersService(client *Client, logger *zap.Logger) *UsersService {
	return &UsersService{client: client, logger: logger}
}

// Credentials are the login form fields
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   struct {
		User User `json:"user"`
	} `json:"data"`
}

// Login authenticates against the backend and returns the established
// session. The returned token is also installed on the shared client so
// subsequent calls are authenticated.
func (s *UsersService) Login(ctx context.Context, creds Credentials) (*session.Session, error) {
	var resp loginResponse
	if err := s.client.do(ctx, http.MethodPost, "/users/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" || resp.Data.User.ID == "" {
		return nil, fmt.Errorf("login response missing token or user")
	}

	s.client.SetToken(resp.Token)

	sess := &session.Session{
		Token:    resp.Token,
		UserID:   resp.Data.User.ID,
		UserName: resp.Data.User.Name,
		Role:     session.Role(resp.Data.User.Role),
	}
	if region := resp.Data.User.Region; region != nil {
		sess.RegionID = region.ID
		sess.RegionName = region.Name
		sess.RegionCode = region.Code
	}

	s.logger.Info("Logged in",
		zap.String("user_id", sess.UserID),
		zap.String("role", sess.Role.String()),
		zap.String("region", sess.RegionCode))

	return sess, nil
}

// Logout invalidates the session on the backend and clears the local token
func (s *UsersService) Logout(ctx context.Context) error {
	if err := s.client.do(ctx, http.MethodGet, "/users/logout", nil, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	s.client.SetToken("")
	return nil
}

// Signup creates a new user account
func (s *UsersService) Signup(ctx context.Context, u User) error {
	return s.client.do(ctx, http.MethodPost, "/users/signup", u, nil)
}

type userResponse struct {
	Data struct {
		User User `json:"user"`
	} `json:"data"`
}

// Me returns the currently authenticated user
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var resp userResponse
	if err := s.client.do(ctx, http.MethodGet, "/users/me", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

type usersResponse struct {
	Data struct {
		Users []User `json:"users"`
	} `json:"data"`
}

// List returns all users (admin only on the backend)
func (s *UsersService) List(ctx context.Context) ([]User, error) {
	var resp usersResponse
	if err := s.client.do(ctx, http.MethodGet, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Users, nil
}

// Get returns a single user by id
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	var resp userResponse
	if err := s.client.do(ctx, http.MethodGet, "/users/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

// Update patches a user record
func (s *UsersService) Update(ctx context.Context, id string, u User) error {
	return s.client.do(ctx, http.MethodPatch, "/users/"+id, u, nil)
}

// Delete removes a user
func (s *UsersService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}

// PasswordUpdate carries the update-password form fields
type PasswordUpdate struct {
	CurrentPassword string `json:"passwordCurrent"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

// UpdatePassword changes the current user's password
func (s *UsersService) UpdatePassword(ctx context.Context, upd PasswordUpdate) error {
	return s.client.do(ctx, http.MethodPatch, "/users/updateMyPassword", upd, nil)
}
