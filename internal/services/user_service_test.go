package services

import (
	"testing"

	"furniture_store/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	user := &models.User{ID: 1, Username: "maria", Email: "maria@example.com"}
	require.NoError(t, service.Register(user, "sturdy-password"))

	require.Equal(t, string(models.RoleCustomer), user.Role)
	require.True(t, user.IsActive)
	require.NotEmpty(t, user.PasswordHash)
	require.NotEqual(t, "sturdy-password", user.PasswordHash)

	authed, err := service.Authenticate("maria@example.com", "sturdy-password")
	require.NoError(t, err)
	require.Equal(t, user.Email, authed.Email)

	_, err = service.Authenticate("maria@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Authenticate("nobody@example.com", "sturdy-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	first := &models.User{ID: 1, Username: "maria", Email: "maria@example.com"}
	require.NoError(t, service.Register(first, "sturdy-password"))

	second := &models.User{ID: 2, Username: "imposter", Email: "maria@example.com"}
	err := service.Register(second, "another-password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticateRejectsDisabledAccount(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo)

	user := &models.User{ID: 1, Username: "maria", Email: "maria@example.com"}
	require.NoError(t, service.Register(user, "sturdy-password"))

	_, err := service.SetActive(1, false)
	require.NoError(t, err)

	_, err = service.Authenticate("maria@example.com", "sturdy-password")
	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestSetRole(t *testing.T) {
	repo := newFakeUserRepo(models.User{ID: 1, Username: "maria", Email: "maria@example.com", Role: string(models.RoleCustomer), IsActive: true})
	service := NewUserService(repo)

	user, err := service.SetRole(1, models.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, string(models.RoleAdmin), user.Role)

	_, err = service.SetRole(42, models.RoleAdmin)
	require.ErrorIs(t, err, ErrUserNotFound)
}
