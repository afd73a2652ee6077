package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/fuel-service/config"
	"github.com/guttosm/fuel-service/internal/domain/dto"
)

// RoleAdmin is the only role issued by the service.
const RoleAdmin = "admin"

const tokenIssuer = "fuel-service"

var (
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminNotConfigured is returned when no admin password hash is set.
	ErrAdminNotConfigured = errors.New("admin account not configured")
)

// Claims is the identity carried by an access token.
type Claims = dto.Claims

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService authenticates the fleet administrator.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.TokenResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// AdminCredentials identify the single administrator account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// TokenConfig holds configuration for access token signing.
type TokenConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
}

// AuthServiceImpl implements AuthService with a bcrypt-hashed admin password and HS256 tokens.
type AuthServiceImpl struct {
	admin     AdminCredentials
	secretKey []byte
	tokenTTL  time.Duration
}

// NewAuthService creates an authentication service.
func NewAuthService(admin AdminCredentials, cfg TokenConfig) *AuthServiceImpl {
	ttl := cfg.AccessTokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthServiceImpl{
		admin:     admin,
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  ttl,
	}
}

// NewAuthServiceFromConfig creates an authentication service from config.AuthConfig.
func NewAuthServiceFromConfig(authConfig config.AuthConfig) *AuthServiceImpl {
	return NewAuthService(
		AdminCredentials{
			Username:     authConfig.AdminUsername,
			PasswordHash: authConfig.AdminPasswordHash,
		},
		TokenConfig{
			SecretKey:      authConfig.JWTSecretKey,
			AccessTokenTTL: authConfig.AccessTokenTTL,
		},
	)
}

// Login checks the admin credentials and issues an access token.
func (s *AuthServiceImpl) Login(_ context.Context, username, password string) (*dto.TokenResponse, error) {
	if s.admin.PasswordHash == "" {
		log.Warn().Msg("login attempted but ADMIN_PASSWORD_HASH is not set")
		return nil, ErrAdminNotConfigured
	}

	// The hash is always compared so an unknown username costs the same.
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password))
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	if passwordErr != nil || !usernameOK {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// ValidateToken parses an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(_ context.Context, tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}
	return nil, ErrInvalidToken
}

func (s *AuthServiceImpl) generateAccessToken(username string) (string, error) {
	issuedAt := time.Now()

	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			Username: username,
			Role:     RoleAdmin,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
