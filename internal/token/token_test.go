package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func TestIssueAndParse(t *testing.T) {
	m := NewManager(testSecret, 5*time.Minute, 24*time.Hour)

	raw, issued, err := m.Issue(Access, 42)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := m.Parse(raw, Access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, Access, claims.TokenType)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestParse_WrongType(t *testing.T) {
	m := NewManager(testSecret, 5*time.Minute, 24*time.Hour)

	raw, _, err := m.Issue(Refresh, 1)
	require.NoError(t, err)

	_, err = m.Parse(raw, Access)
	assert.ErrorIs(t, err, ErrWrongType)

	claims, err := m.Parse(raw, "")
	require.NoError(t, err)
	assert.Equal(t, Refresh, claims.TokenType)
}

func TestParse_Expired(t *testing.T) {
	m := NewManager(testSecret, time.Minute, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	raw, _, err := m.Issue(Access, 1)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(raw, Access)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_BadSignature(t *testing.T) {
	issuer := NewManager("another-secret", time.Minute, time.Hour)
	raw, _, err := issuer.Issue(Access, 1)
	require.NoError(t, err)

	m := NewManager(testSecret, time.Minute, time.Hour)
	_, err = m.Parse(raw, Access)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager(testSecret, time.Minute, time.Hour)
	_, err := m.Parse("this.is.garbage", "")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{"token_type": "access", "user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	m := NewManager(testSecret, time.Minute, time.Hour)
	_, err = m.Parse(raw, Access)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_MissingTokenType(t *testing.T) {
	claims := jwt.MapClaims{"user_id": 1, "exp": time.Now().Add(time.Hour).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	m := NewManager(testSecret, time.Minute, time.Hour)
	_, err = m.Parse(raw, "")
	assert.ErrorIs(t, err, ErrInvalid)
}
