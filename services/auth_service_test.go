package services

import (
	"context"
	"testing"

	"github.com/ManasaYK17/MindPulse-AI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	users := new(MockUserRepository)
	service := NewAuthService(users, newMemStore())

	users.On("GetUserByUsername", "wanjiku").Return(nil, nil)
	users.On("CreateUser", mock.MatchedBy(func(user *models.User) bool {
		// The stored hash must verify against the original password.
		return user.Username == "wanjiku" &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")) == nil
	})).Return(nil)

	user, err := service.Register("wanjiku", "s3cret", "+254711111111")
	assert.NoError(t, err)
	assert.Equal(t, "+254711111111", user.Phone)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewAuthService(users, newMemStore())

	users.On("GetUserByUsername", "wanjiku").Return(&models.User{ID: 1, Username: "wanjiku"}, nil)
	_, err := service.Register("wanjiku", "s3cret", "")
	assert.ErrorIs(t, err, ErrUsernameTaken)
	users.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestAuthService_LoginAndResolve(t *testing.T) {
	users := new(MockUserRepository)
	service := NewAuthService(users, newMemStore())
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)
	stored := &models.User{ID: 7, Username: "wanjiku", PasswordHash: string(hash)}
	users.On("GetUserByUsername", "wanjiku").Return(stored, nil)
	users.On("GetUserByID", uint(7)).Return(stored, nil)

	token, user, err := service.Login(ctx, "wanjiku", "s3cret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(7), user.ID)

	resolved, err := service.Resolve(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, stored, resolved)

	// Wrong password.
	_, _, err = service.Login(ctx, "wanjiku", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Logout invalidates the token.
	assert.NoError(t, service.Logout(ctx, token))
	resolved, err = service.Resolve(ctx, token)
	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	service := NewAuthService(users, newMemStore())

	users.On("GetUserByUsername", "ghost").Return(nil, nil)
	_, _, err := service.Login(context.Background(), "ghost", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Resolve_UnknownToken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewAuthService(users, newMemStore())

	user, err := service.Resolve(context.Background(), "not-a-token")
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = service.Resolve(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
