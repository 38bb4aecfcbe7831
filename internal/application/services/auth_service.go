package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/config"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// Claims is the JWT payload of a session token issued at login.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthService handles registration, authentication and session tokens
// against the credential store.
type AuthService struct {
	userRepo  ports.UserRepository
	jwtConfig config.JWTConfig
	logger    *logger.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo ports.UserRepository, jwtConfig config.JWTConfig, logger *logger.Logger) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

// HashPassword returns the deterministic unsalted SHA-256 hex digest used by
// the stored user documents. The same password always hashes to the same
// value. This keeps users.json drop-in compatible with the original demo
// data; it is not acceptable password storage for a real deployment, which
// would need a salted, slow hash.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new non-admin account. Field validation (required
// fields, password length, email shape, confirmation match) happens at the
// request layer; here only the uniqueness invariant is enforced.
func (s *AuthService) Register(ctx context.Context, req ports.RegisterRequest) (*entities.User, error) {
	user := &entities.User{
		Username:     req.Username,
		PasswordHash: HashPassword(req.Password),
		Email:        req.Email,
		IsAdmin:      false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user %s: %w", req.Username, err)
	}

	s.logger.Info("User registered", "username", user.Username, "email", user.Email)
	return user, nil
}

// Authenticate verifies a username/password pair and returns the stored
// profile. Fails with entities.ErrUserNotFound or entities.ErrWrongPassword.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entities.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("Login attempt for unknown user", "username", username)
		return nil, err
	}

	if user.PasswordHash != HashPassword(password) {
		s.logger.Warn("Login attempt with wrong password", "username", username)
		return nil, entities.ErrWrongPassword
	}

	s.logger.Info("User authenticated", "username", username, "is_admin", user.IsAdmin)
	return user, nil
}

// IssueToken signs a session token for an authenticated user.
func (s *AuthService) IssueToken(user *entities.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.ExpiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.jwtConfig.Issuer,
			Subject:   user.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
