package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"checklist-service/internal/auth"
	"checklist-service/internal/model"
)

type AuthService struct {
	users  UserStore
	tokens *auth.Tokens
	now    func() time.Time
}

func NewAuthService(users UserStore, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens, now: time.Now}
}

type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login matches credentials against the users table. The password check is a
// plain string comparison; the stored credentials are not hashed, matching
// the system this service replaces. Username and nik are interchangeable
// login keys.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", ErrInvalidInput)
	}

	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password == "" || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	// An operator without an assigned plate cannot use any screen; reject at
	// the door instead of failing on every request.
	if (user.Role == model.RoleOperator || user.Role == model.RoleKepalaBP) && len(user.Plates()) == 0 {
		return nil, fmt.Errorf("%w: no vehicle assigned to this account", ErrPermissionDenied)
	}

	token, err := s.tokens.Issue(*user, s.now())
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: *user}, nil
}
