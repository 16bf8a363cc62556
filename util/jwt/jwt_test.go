// util/jwt/jwt_test.go
package jwt

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueRoundTrip(t *testing.T) {
	tok, err := Issue("test-secret", 42, "Customer", 7, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	parsed, err := jwtlib.Parse(tok, func(t *jwtlib.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwtlib.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	require.True(t, ok)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "Customer", claims["role"])
	require.Equal(t, float64(7), claims["pid"])
	require.NotZero(t, claims["exp"])
}

func TestIssueWrongSecretFails(t *testing.T) {
	tok, err := Issue("test-secret", 42, "Employee", 1, 1)
	require.NoError(t, err)

	_, err = jwtlib.Parse(tok, func(t *jwtlib.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	}, jwtlib.WithValidMethods([]string{"HS256"}))
	require.Error(t, err)
}
