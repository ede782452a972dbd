package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/ManasaYK17/MindPulse-AI/models"
	"github.com/ManasaYK17/MindPulse-AI/repository"
	"github.com/ManasaYK17/MindPulse-AI/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned for a wrong username or password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username is already taken")
)

// AuthService handles registration, login, and session-token resolution.
type AuthService interface {
	Register(username, password, phone string) (*models.User, error)
	// Login verifies credentials and issues a session token stored in the
	// session store with the configured TTL.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	// Resolve maps a session token to the user it belongs to. It returns
	// (nil, nil) for an unknown or expired token.
	Resolve(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	users    repository.UserRepository
	sessions session.Store
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users repository.UserRepository, sessions session.Store) AuthService {
	return &authService{users: users, sessions: sessions}
}

func authKey(token string) string { return "auth:" + token }

func (s *authService) Register(username, password, phone string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}
	existing, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{Username: username, PasswordHash: string(hash), Phone: phone}
	if err := s.users.CreateUser(user); err != nil {
		return nil, err
	}
	log.Printf("INFO: [AuthService] Registered user '%s' (id %d).", username, user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	if err := s.sessions.Set(ctx, authKey(token), user.ID); err != nil {
		return "", nil, err
	}
	log.Printf("INFO: [AuthService] User '%s' logged in.", user.Username)
	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, authKey(token))
}

func (s *authService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	var userID uint
	found, err := s.sessions.Get(ctx, authKey(token), &userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return s.users.GetUserByID(userID)
}
