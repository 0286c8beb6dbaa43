package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig bundles the password hashing and token settings the auth
// layer needs.
type AuthConfig struct {
	// BcryptCost is the bcrypt work factor, constrained to 10-14.
	BcryptCost int
	// Pepper is an optional global secret appended to passwords before
	// hashing.
	Pepper string
	// JWTSecret signs session tokens. Required.
	JWTSecret string
	// TokenHours is the token lifetime in hours.
	TokenHours int
}

// NewAuthConfig builds auth settings from environment variables:
// JWT_SECRET (required), JWT_EXPIRATION_HOURS (default 24),
// BCRYPT_COST (default 12), PASSWORD_PEPPER (optional).
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if hoursStr := os.Getenv("JWT_EXPIRATION_HOURS"); hoursStr != "" {
		parsed, err := strconv.Atoi(hoursStr)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %v", err)
		}
		hours = parsed
	}

	cost := 12
	if costStr := os.Getenv("BCRYPT_COST"); costStr != "" {
		parsed, err := strconv.Atoi(costStr)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
		}
		cost = parsed
	}

	cfg := &AuthConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
		JWTSecret:  secret,
		TokenHours: hours,
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AuthConfig) normalize() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}
	if c.TokenHours < 1 {
		return fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", c.TokenHours)
	}
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost)
	}
	return nil
}

// HashPassword hashes a password using bcrypt, applying the pepper when
// configured.
func (c *AuthConfig) HashPassword(pw string) (string, error) {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash.
func (c *AuthConfig) VerifyPassword(pw, storedHash string) bool {
	password := pw
	if c.Pepper != "" {
		password = pw + c.Pepper
	}

	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password))
	return err == nil
}
