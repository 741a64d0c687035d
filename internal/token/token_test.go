package token_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/dentora/clinic-backend/internal/models"
	"github.com/dentora/clinic-backend/internal/token"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)
	userID := uuid.New()
	tenantID := uuid.New()

	raw, err := codec.Issue(userID, tenantID, "dentist@clinic.test", models.RoleDentist)
	require.NoError(t, err)

	ident, err := codec.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, userID, ident.UserID)
	require.Equal(t, tenantID, ident.TenantID)
	require.Equal(t, "dentist@clinic.test", ident.Email)
	require.Equal(t, models.RoleDentist, ident.Role)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)
	raw, err := codec.Issue(uuid.New(), uuid.New(), "admin@clinic.test", models.RoleAdmin)
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)
	sig[0] ^= 0x01
	parts[2] = base64.RawURLEncoding.EncodeToString(sig)

	_, err = codec.Verify(strings.Join(parts, "."))
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	other := token.NewCodec("another-secret", time.Hour)
	raw, err := other.Issue(uuid.New(), uuid.New(), "admin@clinic.test", models.RoleAdmin)
	require.NoError(t, err)

	codec := token.NewCodec(testSecret, time.Hour)
	_, err = codec.Verify(raw)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	claims := token.Claims{
		TenantID: uuid.NewString(),
		Role:     string(models.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	codec := token.NewCodec(testSecret, time.Hour)
	_, err = codec.Verify(raw)
	require.ErrorIs(t, err, token.ErrInvalidSignature)
}

func TestVerifyExpiry(t *testing.T) {
	live := token.NewCodec(testSecret, time.Hour)
	raw, err := live.Issue(uuid.New(), uuid.New(), "admin@clinic.test", models.RoleAdmin)
	require.NoError(t, err)
	_, err = live.Verify(raw)
	require.NoError(t, err)

	dead := token.NewCodec(testSecret, -time.Minute)
	raw, err = dead.Issue(uuid.New(), uuid.New(), "admin@clinic.test", models.RoleAdmin)
	require.NoError(t, err)
	_, err = dead.Verify(raw)
	require.ErrorIs(t, err, token.ErrExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, token.ErrMalformed, "input %q", raw)
	}
}

// A correctly signed token whose claims cannot be interpreted is malformed,
// not accepted with defaults.
func TestVerifyRejectsBadClaims(t *testing.T) {
	codec := token.NewCodec(testSecret, time.Hour)

	sign := func(claims token.Claims) string {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)
		return raw
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	badSubject := sign(token.Claims{
		TenantID:         uuid.NewString(),
		Role:             string(models.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid", ExpiresAt: exp},
	})
	_, err := codec.Verify(badSubject)
	require.ErrorIs(t, err, token.ErrMalformed)

	badRole := sign(token.Claims{
		TenantID:         uuid.NewString(),
		Role:             "SUPERUSER",
		RegisteredClaims: jwt.RegisteredClaims{Subject: uuid.NewString(), ExpiresAt: exp},
	})
	_, err = codec.Verify(badRole)
	require.ErrorIs(t, err, token.ErrMalformed)
}
