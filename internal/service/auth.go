package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msomdec/inkwell/internal/crypto"
	"github.com/msomdec/inkwell/internal/domain"
)

const tokenTTL = 24 * time.Hour

// Claims is the minimal identity a validated token resolves to.
type Claims struct {
	UserID int64
	Email  string
}

// AuthService handles user registration, sign-in, profile updates, and JWT
// token operations.
type AuthService struct {
	users     domain.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a new user account after validating inputs. The password
// is hashed with a fresh per-user salt; neither plaintext nor salt ever
// leaves this layer.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*domain.User, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: full name, email, and password are required", domain.ErrInvalidInput)
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash := crypto.HashPassword([]byte(password), salt)

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hex.EncodeToString(hash),
		PasswordSalt: hex.EncodeToString(salt),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login matches the credentials against the stored hash and returns a signed
// token on success. Unknown email and wrong password fail identically so the
// response never reveals which check tripped.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	salt, err := hex.DecodeString(user.PasswordSalt)
	if err != nil {
		return "", fmt.Errorf("decode salt: %w", err)
	}
	hash, err := hex.DecodeString(user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("decode hash: %w", err)
	}

	if !crypto.VerifyPassword([]byte(password), salt, hash) {
		return "", domain.ErrUnauthorized
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", fmt.Errorf("generate jwt: %w", err)
	}

	return token, nil
}

// ValidateToken parses and validates a JWT token string, returning the
// identity claims it encodes. Malformed, tampered, and expired tokens all
// collapse to ErrUnauthorized.
func (s *AuthService) ValidateToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return Claims{}, domain.ErrUnauthorized
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, domain.ErrUnauthorized
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return Claims{}, domain.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return Claims{}, domain.ErrUnauthorized
	}

	email, _ := mapClaims["email"].(string)
	return Claims{UserID: userID, Email: email}, nil
}

// GetUserByID retrieves a user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// ListUsers returns every registered user.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// DeleteAllUsers wipes the user collection. Administrative escape hatch.
func (s *AuthService) DeleteAllUsers(ctx context.Context) (int64, error) {
	return s.users.DeleteAll(ctx)
}

// UpdateProfile applies a single-field profile update and returns the
// refreshed user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, update domain.ProfileUpdate) (*domain.User, error) {
	if err := update.Validate(); err != nil {
		return nil, fmt.Errorf("%w: exactly one of email, fullName, or profileImageURL must be set", domain.ErrInvalidInput)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	switch {
	case update.Email != nil:
		user.Email = *update.Email
	case update.FullName != nil:
		user.FullName = *update.FullName
	case update.ProfileImageURL != nil:
		user.ProfileImageURL = *update.ProfileImageURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *AuthService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
