package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"workhours/internal/model"
	"workhours/internal/repository"
)

const bcryptCost = 10

// AuthService verifies the single PIN credential and issues JWTs for it.
// The very first login with the configured default PIN bootstraps the
// credential record.
type AuthService struct {
	userRepo   *repository.UserRepository
	secret     []byte
	tokenTTL   time.Duration
	defaultPIN string
}

func NewAuthService(userRepo *repository.UserRepository, secret string, tokenTTL time.Duration, defaultPIN string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		defaultPIN: defaultPIN,
	}
}

// Login checks the PIN and returns a signed token plus the user record.
func (s *AuthService) Login(ctx context.Context, pin string) (string, *model.User, error) {
	if err := validatePIN(pin); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.First(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		user, err = s.bootstrap(ctx, pin)
		if err != nil {
			return "", nil, err
		}
	case err != nil:
		return "", nil, err
	default:
		if bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)) != nil {
			return "", nil, model.ErrInvalidPIN
		}
	}

	if err := s.userRepo.TouchLastLogin(ctx, user, time.Now().UTC()); err != nil {
		return "", nil, err
	}

	token, err := s.issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ChangePIN replaces the stored PIN after verifying the current one.
func (s *AuthService) ChangePIN(ctx context.Context, userID, currentPIN, newPIN string) error {
	if err := validatePIN(newPIN); err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(currentPIN)) != nil {
		return model.ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPIN), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	return s.userRepo.SavePinHash(ctx, user, string(hash))
}

// Verify parses a token and returns the user it was issued for.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, model.ErrInvalidPIN
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return nil, model.ErrInvalidPIN
	}
	return s.userRepo.FindByID(ctx, subject)
}

func (s *AuthService) bootstrap(ctx context.Context, pin string) (*model.User, error) {
	if s.defaultPIN == "" {
		return nil, fmt.Errorf("no credential configured: set DEFAULT_PIN for first login")
	}
	if pin != s.defaultPIN {
		return nil, model.ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	user := model.User{ID: uuid.NewString(), PinHash: string(hash)}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, err
	}
	log.Printf("[info] bootstrapped credential %s from default PIN", user.ID)
	return &user, nil
}

func (s *AuthService) issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func validatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return model.NewValidationError("pin", "PIN must be 4-6 digits")
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return model.NewValidationError("pin", "PIN must contain only digits")
		}
	}
	return nil
}
