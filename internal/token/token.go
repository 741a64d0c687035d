package token

import (
	"errors"
	"time"

	"github.com/dentora/clinic-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("token signature is invalid")
	ErrExpired          = errors.New("token is expired")
	ErrMalformed        = errors.New("token is malformed")
)

// Claims is the wire shape of an access token. UUIDs travel as canonical
// lowercase-hyphenated strings, times as Unix epoch seconds.
type Claims struct {
	TenantID string `json:"tenant_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is a verified token payload.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     models.Role
}

// Identity parses and validates the claim fields. It does NOT check the
// signature; callers must only invoke it on claims that came out of a
// successful parse.
func (c *Claims) Identity() (*Identity, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, ErrMalformed
	}
	tenantID, err := uuid.Parse(c.TenantID)
	if err != nil {
		return nil, ErrMalformed
	}
	role := models.Role(c.Role)
	if !role.Valid() {
		return nil, ErrMalformed
	}
	return &Identity{
		UserID:   userID,
		TenantID: tenantID,
		Email:    c.Email,
		Role:     role,
	}, nil
}

// Codec issues and verifies HS256 access tokens. The secret and lifetime are
// fixed at construction and never mutated, so a single Codec is safe for
// concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity with the configured lifetime.
func (c *Codec) Issue(userID, tenantID uuid.UUID, email string, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		TenantID: tenantID.String(),
		Email:    email,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature, algorithm and expiry, then returns the identity.
// Tokens signed with another algorithm (including "none") are rejected as
// invalid-signature, never accepted.
func (c *Codec) Verify(raw string) (*Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		default:
			return nil, ErrMalformed
		}
	}
	return claims.Identity()
}
