// Package auth provides the authorization strategies a publish client can
// attach to outgoing requests. Each credential renders itself into a
// complete Authorization header value with no network or I/O side effects.
package auth

import (
	"encoding/base64"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	griperrors "github.com/xsellco/grip/errors"
)

// ErrIncompleteCredential is returned when a JWT credential has neither a
// bare token nor a full (claims, key) pair to sign.
var ErrIncompleteCredential = errors.New("jwt credential requires a token or claims and key")

// Credential is an authorization strategy. RenderHeader produces the full
// Authorization header value from the credential's stored fields alone.
type Credential interface {
	RenderHeader() (string, error)
}

// Basic is an HTTP basic-auth credential.
type Basic struct {
	Username string
	Password string
}

// RenderHeader returns "Basic " + base64(username:password).
func (b Basic) RenderHeader() (string, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(b.Username + ":" + b.Password))
	return "Basic " + encoded, nil
}

// JWT is a bearer-token credential. It is constructed in exactly one of
// two modes: NewJWT stores a claim set and signing key, deferring the
// signature to render time; NewToken stores a pre-signed token rendered
// verbatim without ever invoking the signer.
type JWT struct {
	claims jwt.MapClaims
	key    []byte
	token  string
}

// NewJWT creates a JWT credential that signs the given claims with the
// given key (HS256) each time the header is rendered.
func NewJWT(claims map[string]any, key []byte) JWT {
	return JWT{claims: jwt.MapClaims(claims), key: key}
}

// NewToken creates a JWT credential from an already-signed compact token.
func NewToken(token string) JWT {
	return JWT{token: token}
}

// Claims returns the stored claim set, nil in bare-token mode.
func (j JWT) Claims() map[string]any {
	return j.claims
}

// Token returns the stored pre-signed token, empty in claims mode.
func (j JWT) Token() string {
	return j.token
}

// RenderHeader returns "Bearer " + token, signing the stored claims when
// no pre-signed token is set. Fails with ErrIncompleteCredential when
// neither construction mode was fully specified.
func (j JWT) RenderHeader() (string, error) {
	if j.token != "" {
		return "Bearer " + j.token, nil
	}
	if j.claims == nil || len(j.key) == 0 {
		return "", ErrIncompleteCredential
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, j.claims).SignedString(j.key)
	if err != nil {
		return "", griperrors.Wrap(err, "JWT", "RenderHeader", "sign claims")
	}
	return "Bearer " + signed, nil
}
