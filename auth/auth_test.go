package auth

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicRenderHeader(t *testing.T) {
	cred := Basic{Username: "user", Password: "pass"}

	header, err := cred.RenderHeader()
	require.NoError(t, err)

	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
	assert.Equal(t, expected, header)
}

func TestBasicRenderHeaderEmptyFields(t *testing.T) {
	header, err := Basic{}.RenderHeader()
	require.NoError(t, err)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte(":")), header)
}

func TestNewTokenRendersWithoutSigning(t *testing.T) {
	cred := NewToken("token")

	header, err := cred.RenderHeader()
	require.NoError(t, err)
	assert.Equal(t, "Bearer token", header)

	// Bare-token mode stores no claim material at all.
	assert.Nil(t, cred.Claims())
	assert.Equal(t, "token", cred.Token())
}

func TestNewJWTStoresClaimsUnresolved(t *testing.T) {
	cred := NewJWT(map[string]any{"iss": "iss"}, []byte("key"))

	assert.Equal(t, map[string]any{"iss": "iss"}, cred.Claims())
	assert.Empty(t, cred.Token())
}

func TestNewJWTSignsAtRenderTime(t *testing.T) {
	cred := NewJWT(map[string]any{"iss": "iss"}, []byte("key"))

	header, err := cred.RenderHeader()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(header, "Bearer "))

	// The rendered token verifies against the signing key and carries
	// the original claims.
	raw := strings.TrimPrefix(header, "Bearer ")
	parsed, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte("key"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "iss", claims["iss"])
}

func TestJWTRenderDeterministic(t *testing.T) {
	cred := NewJWT(map[string]any{"iss": "iss"}, []byte("key"))

	first, err := cred.RenderHeader()
	require.NoError(t, err)
	second, err := cred.RenderHeader()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJWTIncompleteCredential(t *testing.T) {
	tests := []struct {
		name string
		cred JWT
	}{
		{"zero value", JWT{}},
		{"claims without key", NewJWT(map[string]any{"iss": "iss"}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cred.RenderHeader()
			assert.ErrorIs(t, err, ErrIncompleteCredential)
		})
	}
}
