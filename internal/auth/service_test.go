package auth

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
	"github.com/Preetham1508/DogHTTPImages/internal/token"
)

// failingRepo simulates storage outage.
type failingRepo struct {
	*MemoryRepository
	err error
}

func (f *failingRepo) CreateUser(ctx context.Context, user *User) error {
	return f.err
}

func newTestService(repo Repository) (*Service, *token.Service) {
	tokens := token.NewService([]byte("test-secret"), 24*time.Hour)
	return NewService(repo, NewHasher(), tokens), tokens
}

func TestSignupThenLogin(t *testing.T) {
	repo := NewMemoryRepository()
	svc, tokens := newTestService(repo)

	signup, err := svc.Signup(context.Background(), "Preetham", "p@test.local", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, signup.Token)
	require.NotEmpty(t, signup.UserID)

	// The issued token must resolve to the freshly created user.
	userID, err := tokens.Verify(signup.Token)
	require.NoError(t, err)
	assert.Equal(t, signup.UserID, userID)

	login, err := svc.Login(context.Background(), "p@test.local", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, signup.UserID, login.UserID)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	repo := NewMemoryRepository()
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "", "p@test.local", "hunter22")
	require.NoError(t, err)

	stored := repo.byEmail["p@test.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.True(t, NewHasher().Verify("hunter22", stored.PasswordHash))
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newTestService(NewMemoryRepository())

	_, err := svc.Signup(context.Background(), "x", "", "pw")
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = svc.Signup(context.Background(), "x", "p@test.local", "")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a", "dup@test.local", "first")
	require.NoError(t, err)

	// Conflict regardless of password value.
	_, err = svc.Signup(context.Background(), "b", "dup@test.local", "second")
	assert.ErrorIs(t, err, shared.ErrDuplicateEmail)
}

func TestLoginFailuresAreIndistinct(t *testing.T) {
	repo := NewMemoryRepository()
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a", "known@test.local", "rightpw")
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "unknown@test.local", "whatever")
	_, wrongPwErr := svc.Login(context.Background(), "known@test.local", "wrongpw")

	assert.ErrorIs(t, unknownErr, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPwErr, shared.ErrInvalidCredentials)
	assert.Equal(t, unknownErr, wrongPwErr)
}

func TestSignupPropagatesStorageError(t *testing.T) {
	repo := &failingRepo{MemoryRepository: NewMemoryRepository(), err: fmt.Errorf("connection refused")}
	svc, _ := newTestService(repo)

	_, err := svc.Signup(context.Background(), "a", "p@test.local", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, shared.ErrValidation)
}

func TestHasherVerifyMalformedDigest(t *testing.T) {
	hasher := NewHasher()
	assert.False(t, hasher.Verify("pw", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("pw", ""))
}
