package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

const testSecret = "test-secret"

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte(testSecret), 24*time.Hour)

	signed, err := svc.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestVerifyExpiryWindow(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	svc := NewService([]byte(testSecret), 24*time.Hour).WithClock(func() time.Time { return clock })

	signed, err := svc.Issue("user-123")
	require.NoError(t, err)

	cases := []struct {
		name    string
		at      time.Time
		expired bool
	}{
		{"at issuance", issuedAt, false},
		{"mid window", issuedAt.Add(12 * time.Hour), false},
		{"just before expiry", issuedAt.Add(24*time.Hour - time.Second), false},
		{"at expiry", issuedAt.Add(24 * time.Hour), true},
		{"after expiry", issuedAt.Add(25 * time.Hour), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock = tc.at
			_, err := svc.Verify(signed)
			if tc.expired {
				assert.ErrorIs(t, err, shared.ErrTokenExpired)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyTamperedTokenIsInvalidNotExpired(t *testing.T) {
	svc := NewService([]byte(testSecret), 24*time.Hour)

	signed, err := svc.Issue("user-123")
	require.NoError(t, err)

	// Flip one byte at a time; every mutation must fail as invalid, never
	// as expired. The final byte is skipped: its low bits are base64 padding
	// the decoder does not look at.
	for i := 0; i < len(signed)-1; i++ {
		mutated := []byte(signed)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		_, err := svc.Verify(string(mutated))
		require.Error(t, err, "byte %d", i)
		assert.ErrorIs(t, err, shared.ErrTokenInvalid, "byte %d", i)
		assert.NotErrorIs(t, err, shared.ErrTokenExpired, "byte %d", i)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService([]byte(testSecret), 24*time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(garbage)
		assert.ErrorIs(t, err, shared.ErrTokenInvalid)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewService([]byte("other-secret"), 24*time.Hour).Issue("user-123")
	require.NoError(t, err)

	svc := NewService([]byte(testSecret), 24*time.Hour)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, shared.ErrTokenInvalid)
}

func TestVerifyMissingUserIDClaim(t *testing.T) {
	// A well-signed token without the user_id claim is invalid, not expired.
	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := bare.SignedString([]byte(testSecret))
	require.NoError(t, err)

	svc := NewService([]byte(testSecret), 24*time.Hour)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, shared.ErrTokenInvalid)
}
