package services

import (
	"testing"

	"github.com/martinkovac/poolwatch/internal/dto"
	"github.com/martinkovac/poolwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultAdminIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	require.NoError(t, svc.EnsureDefaultAdmin())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.ForcePasswordChange)

	// second call is a no-op
	require.NoError(t, svc.EnsureDefaultAdmin())
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnsureDefaultAdminSkippedWhenUsersExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.CreateUser(&dto.CreateUserRequest{Username: "jana", Password: "secret", Role: "user"})
	require.NoError(t, err)

	require.NoError(t, svc.EnsureDefaultAdmin())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	require.NoError(t, svc.EnsureDefaultAdmin())

	resp, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.True(t, resp.User.MustChangePassword)

	// the failure message never reveals which field was wrong
	_, err = svc.Login(&dto.LoginRequest{Username: "admin", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, unknownErr := svc.Login(&dto.LoginRequest{Username: "nobody", Password: "admin123"})
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, err.Error(), unknownErr.Error())
}

func TestRefreshRotatesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	require.NoError(t, svc.EnsureDefaultAdmin())

	login, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// the old token is revoked after use
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	require.NoError(t, svc.EnsureDefaultAdmin())

	login, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePasswordClearsRotationFlag(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	require.NoError(t, svc.EnsureDefaultAdmin())

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)

	err := svc.ChangePassword(admin.ID, &dto.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "new-password"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(admin.ID, &dto.ChangePasswordRequest{OldPassword: "admin123", NewPassword: "new-password"}))

	resp, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "new-password"})
	require.NoError(t, err)
	assert.False(t, resp.User.MustChangePassword)
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	user, err := svc.CreateUser(&dto.CreateUserRequest{Username: "jana", Password: "secret", Role: "user"})
	require.NoError(t, err)
	assert.Equal(t, "jana", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "jana", Password: "other", Role: "admin"})
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "", Password: "secret", Role: "user"})
	require.ErrorIs(t, err, ErrCredentialsEmpty)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "martin", Password: "", Role: "user"})
	require.ErrorIs(t, err, ErrCredentialsEmpty)

	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "martin", Password: "secret", Role: "superadmin"})
	require.ErrorIs(t, err, ErrInvalidRole)

	// stored hash is never the raw password
	var stored models.User
	require.NoError(t, db.Where("username = ?", "jana").First(&stored).Error)
	assert.NotEqual(t, "secret", stored.PasswordHash)
}

func TestAuthorize(t *testing.T) {
	svc := NewAuthService(newTestDB(t), testConfig())

	tests := []struct {
		name      string
		role      string
		operation string
		permit    bool
	}{
		{"admin may create users", models.RoleAdmin, OpCreateUser, true},
		{"admin may list users", models.RoleAdmin, OpListUsers, true},
		{"user may not create users", models.RoleUser, OpCreateUser, false},
		{"user may not list users", models.RoleUser, OpListUsers, false},
		{"unknown operation denied", models.RoleAdmin, "drop tables", false},
		{"empty role denied", "", OpCreateUser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Authorize(tt.role, tt.operation)
			if tt.permit {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrPermissionDenied)
				assert.Contains(t, err.Error(), tt.operation)
			}
		})
	}
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	_, err := svc.CreateUser(&dto.CreateUserRequest{Username: "jana", Password: "secret", Role: "user"})
	require.NoError(t, err)
	_, err = svc.CreateUser(&dto.CreateUserRequest{Username: "martin", Password: "secret", Role: "admin"})
	require.NoError(t, err)

	users, err := svc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
}
