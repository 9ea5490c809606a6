package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "tacocat/internal/errors"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "session"

// Claims identifies the logged-in user of a session.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues, validates and revokes signed session tokens.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	store  TokenStoreInterface
	now    func() time.Time
}

// NewSessionManager creates a session manager. store may be nil, in which case
// logout only clears the cookie.
func NewSessionManager(secret string, ttl time.Duration, store TokenStoreInterface) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// TTL is the lifetime of newly issued sessions.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new session token for the user.
func (m *SessionManager) Issue(userID uint, email string) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   fmt.Sprint(userID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign session: %w", err)
	}
	return token, claims, nil
}

// Parse validates a session token and rejects revoked sessions.
// Every rejection is reported as ErrSessionInvalid.
func (m *SessionManager) Parse(ctx context.Context, tokenString string) (*Claims, error) {
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" || claims.UserID == 0 {
		return nil, apperrors.ErrSessionInvalid
	}

	if m.store != nil {
		revoked, err := m.store.IsSessionRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, apperrors.ErrSessionInvalid
		}
	}
	return claims, nil
}

// Revoke invalidates the session until its natural expiry. A nil session is a no-op.
func (m *SessionManager) Revoke(ctx context.Context, claims *Claims) error {
	if claims == nil || m.store == nil {
		return nil
	}

	ttl := m.ttl
	if claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(m.now())
	}
	if ttl <= 0 {
		return nil
	}
	return m.store.RevokeSession(ctx, claims.ID, ttl)
}
