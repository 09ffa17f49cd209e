package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sokochat/sokochat/ent"
	"github.com/sokochat/sokochat/ent/user"
)

// AuthSecretEnvVar holds the HMAC key that signs bearer tokens. Like the
// encryption key, it never appears in configuration files.
const AuthSecretEnvVar = "SOKOCHAT_AUTH_SECRET"

// tokenTTL bounds how long a minted bearer token stays valid.
const tokenTTL = 24 * time.Hour

const minPasswordLength = 8

// AuthService handles registration, login, and bearer-token verification.
// Tokens are opaque HMAC-signed blobs parsed server-side; there is no
// third-party token format to stay compatible with.
type AuthService struct {
	client *ent.Client
	secret []byte

	now func() time.Time
}

// NewAuthService creates an AuthService with an explicit signing secret.
func NewAuthService(client *ent.Client, secret []byte) *AuthService {
	return &AuthService{client: client, secret: secret, now: time.Now}
}

// NewAuthServiceFromEnv creates an AuthService with the secret from
// AuthSecretEnvVar.
func NewAuthServiceFromEnv(client *ent.Client) (*AuthService, error) {
	secret := os.Getenv(AuthSecretEnvVar)
	if secret == "" {
		return nil, fmt.Errorf("auth secret not configured: set %s", AuthSecretEnvVar)
	}
	return NewAuthService(client, []byte(secret)), nil
}

// Register creates a user account with a bcrypt password hash.
func (s *AuthService) Register(ctx context.Context, email, password string) (*ent.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, NewValidationError("email", "must be a valid email address")
	}
	if len(password) < minPasswordLength {
		return nil, NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetPasswordHash(string(hash)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("user %s: %w", email, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Login verifies the password and mints a bearer token. Unknown email and
// wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.Email(strings.ToLower(strings.TrimSpace(email)))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.MintToken(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// tokenClaims is the signed token payload.
type tokenClaims struct {
	UserID    string `json:"uid"`
	ExpiresAt int64  `json:"exp"`
}

// MintToken signs a token carrying the user id and expiry.
func (s *AuthService) MintToken(userID string) (string, error) {
	claims, err := json.Marshal(tokenClaims{
		UserID:    userID,
		ExpiresAt: s.now().Add(tokenTTL).Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal token claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(claims)
	return payload + "." + s.sign(payload), nil
}

// ParseToken verifies the signature and expiry and returns the user id.
func (s *AuthService) ParseToken(token string) (string, error) {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", ErrTokenInvalid
	}
	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return "", ErrTokenInvalid
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrTokenInvalid
	}
	var claims tokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return "", ErrTokenInvalid
	}
	if claims.UserID == "" || s.now().Unix() >= claims.ExpiresAt {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

// Authenticate parses the token and loads the user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*ent.User, error) {
	userID, err := s.ParseToken(token)
	if err != nil {
		return nil, err
	}
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return u, nil
}

func (s *AuthService) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
