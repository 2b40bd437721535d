package auth

import (
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")

	token, err := svc.IssueToken(map[string]any{
		service.ClaimSubject: "42",
		service.ClaimRole:    "merchant",
	}, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.DecodeToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims[service.ClaimSubject])
	assert.Equal(t, "merchant", claims[service.ClaimRole])
	assert.Contains(t, claims, service.ClaimExpiry)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, "secret")
	assert.Equal(t, 60*time.Minute, svc.AccessTokenTTL())

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: 5 * time.Minute}}
	cfg.SecretKey.Access = "secret"
	custom, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, custom.AccessTokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, "secret")
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueToken(map[string]any{service.ClaimSubject: "1"}, time.Minute)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.DecodeToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestJWTService(t, "secret")

	token, err := svc.IssueToken(map[string]any{service.ClaimSubject: "1"}, 0)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.DecodeToken(tampered)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one")
	verifier := newTestJWTService(t, "secret-two")

	token, err := issuer.IssueToken(map[string]any{service.ClaimSubject: "1"}, 0)
	require.NoError(t, err)

	_, err = verifier.DecodeToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t, "secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		service.ClaimSubject: "1",
		service.ClaimExpiry:  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.DecodeToken(token)
	assert.True(t, errors.Is(err, service.ErrInvalidToken))

	_, err = svc.DecodeToken("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, service.ErrInvalidToken))
}
