package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRedactsCredentialKeys(t *testing.T) {
	l, err := New("test")
	require.NoError(t, err)

	out := l.sanitize([]interface{}{
		"authorization", "Bearer abc",
		"profile_id", "p-1",
		"jwt_secret_key", "s3cret",
	})

	assert.Equal(t, []interface{}{
		"authorization", "[REDACTED]",
		"profile_id", "p-1",
		"jwt_secret_key", "[REDACTED]",
	}, out)
}

func TestSanitizeRedactsJWTShapedValues(t *testing.T) {
	l := Nop()
	l.redact = true

	out := l.sanitize([]interface{}{"value", "eyJhbGciOiJIUzI1.eyJzdWIiOiIxMjM0NTY3.sig"})
	assert.Equal(t, "[REDACTED]", out[1])
}

func TestSanitizeDisabled(t *testing.T) {
	l, err := New("test", WithRedaction(false))
	require.NoError(t, err)

	out := l.sanitize([]interface{}{"token", "raw"})
	assert.Equal(t, "raw", out[1])
}

func TestSanitizeKeepsDanglingKey(t *testing.T) {
	l := Nop()
	l.redact = true

	out := l.sanitize([]interface{}{"a", 1, "dangling"})
	assert.Equal(t, []interface{}{"a", 1, "dangling"}, out)
}
