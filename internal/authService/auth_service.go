package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gig-market/internal/markerrors"
	"gig-market/internal/models"
	"gig-market/internal/repository"
	"gig-market/utils"
)

// tokenTTL is the lifetime of a session token.
const tokenTTL = 24 * time.Hour

// AuthService defines registration, login and session token handling
type AuthService struct {
	store  repository.MarketStore
	secret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(store repository.MarketStore, secret string) *AuthService {
	return &AuthService{
		store:  store,
		secret: secret,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (s *AuthService) Register(ctx context.Context, name, email, password string) (models.Profile, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return models.Profile{}, fmt.Errorf("service: %w - name, email and password are required", markerrors.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return models.Profile{}, fmt.Errorf("service: %w - malformed email", markerrors.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       utils.GenerateID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to register %s: %w", email, err)
	}
	return user.Profile(), nil
}

// Login verifies credentials and returns the profile with a signed session
// token. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Profile, string, error) {
	if email == "" || password == "" {
		return models.Profile{}, "", fmt.Errorf("service: %w - email and password are required", markerrors.ErrInvalidInput)
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, markerrors.ErrUserNotFound) {
			return models.Profile{}, "", fmt.Errorf("service: login: %w", markerrors.ErrBadCredentials)
		}
		return models.Profile{}, "", fmt.Errorf("service: failed to look up %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Profile{}, "", fmt.Errorf("service: login: %w", markerrors.ErrBadCredentials)
	}

	token, err := s.GenerateToken(user.UserID)
	if err != nil {
		return models.Profile{}, "", fmt.Errorf("service: failed to sign token: %w", err)
	}
	return user.Profile(), token, nil
}

// CurrentUser returns the public profile for an authenticated user id
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (models.Profile, error) {
	if userID == "" {
		return models.Profile{}, fmt.Errorf("service: %w - empty user ID", markerrors.ErrInvalidInput)
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user.Profile(), nil
}

// GenerateToken creates a signed HS256 session token for a user id
func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseToken validates a session token and extracts the user id
func ParseToken(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", jwt.ErrTokenMalformed
	}
	return sub, nil
}
