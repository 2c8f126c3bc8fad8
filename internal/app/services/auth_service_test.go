package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models"
	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/auth"
)

type fakeAuthUserStore struct {
	users     map[int64]*models.User
	nextID    int64
	createErr error
	lastLogin []int64
}

func newFakeAuthUserStore() *fakeAuthUserStore {
	return &fakeAuthUserStore{users: make(map[int64]*models.User), nextID: 1}
}

func (f *fakeAuthUserStore) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.UserUID == user.UserUID {
			return apperrors.ErrUIDAlreadyExists
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeAuthUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeAuthUserStore) GetByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == identifier || user.UserUID == identifier {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeAuthUserStore) UpdateLastLogin(_ context.Context, id int64, _ time.Time) error {
	f.lastLogin = append(f.lastLogin, id)
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*models.RefreshToken
	nextID int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]*models.RefreshToken), nextID: 1}
}

func (f *fakeTokenStore) Save(_ context.Context, token *models.RefreshToken) error {
	token.ID = f.nextID
	f.nextID++
	token.CreatedAt = time.Now()
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeTokenStore) GetByToken(_ context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	return rt, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	rt, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.Revoked = true
	return nil
}

func newTestAuthService() (AuthService, *fakeAuthUserStore, *fakeTokenStore) {
	userStore := newFakeAuthUserStore()
	tokenStore := newFakeTokenStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campushub.test",
	})
	return NewAuthService(userStore, tokenStore, jwtService), userStore, tokenStore
}

func registerRequest(uid string) dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Email:     uid + "@campus.edu",
		UserUID:   uid,
		Password:  "password123",
	}
}

func TestRegisterAssignsRoleFromUIDPrefix(t *testing.T) {
	tests := []struct {
		name     string
		uid      string
		wantRole int
	}{
		{"student prefix", "stu1001", models.RoleIDStudent},
		{"faculty prefix", "fac2001", models.RoleIDFaculty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userStore, tokenStore := newTestAuthService()

			resp, err := svc.Register(context.Background(), registerRequest(tt.uid))
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, resp.User.RoleID)
			assert.True(t, resp.User.IsActive)
			assert.NotEmpty(t, resp.Token.AccessToken)
			assert.NotEmpty(t, resp.Token.RefreshToken)

			created := userStore.users[resp.User.ID]
			require.NotNil(t, created)
			assert.Equal(t, tt.wantRole, created.RoleID)
			assert.NotEqual(t, "password123", created.PasswordHash)
			assert.Len(t, tokenStore.tokens, 1)
		})
	}
}

func TestRegisterRejectsAdminUID(t *testing.T) {
	svc, userStore, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerRequest("adm3001"))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Empty(t, userStore.users)
}

func TestRegisterRejectsMalformedUID(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerRequest("xyz1001"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)

	dup := registerRequest("stu1002")
	dup.Email = "stu1001@campus.edu"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginByEmailAndUID(t *testing.T) {
	svc, userStore, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)

	for _, identifier := range []string{"stu1001@campus.edu", "stu1001"} {
		loginResp, err := svc.Login(context.Background(),
			dto.LoginRequest{Identifier: identifier, Password: "password123"})
		require.NoError(t, err, identifier)
		assert.Equal(t, resp.User.ID, loginResp.User.ID)
	}

	assert.Len(t, userStore.lastLogin, 2)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(),
		dto.LoginRequest{Identifier: "stu1001", Password: "not-the-password"})
	_, unknownUser := svc.Login(context.Background(),
		dto.LoginRequest{Identifier: "stu9999", Password: "password123"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, userStore, _ := newTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)
	userStore.users[resp.User.ID].IsActive = false

	_, err = svc.Login(context.Background(),
		dto.LoginRequest{Identifier: "stu1001", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokenStore := newTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)
	original := resp.Token.RefreshToken

	rotated, err := svc.RefreshToken(context.Background(), original)
	require.NoError(t, err)
	assert.NotEqual(t, original, rotated.RefreshToken)
	assert.True(t, tokenStore.tokens[original].Revoked)

	// The original token cannot be used again
	_, err = svc.RefreshToken(context.Background(), original)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenExpired(t *testing.T) {
	svc, _, tokenStore := newTestAuthService()

	resp, err := svc.Register(context.Background(), registerRequest("stu1001"))
	require.NoError(t, err)

	tokenStore.tokens[resp.Token.RefreshToken].ExpiresAt = time.Now().Add(-time.Minute)

	_, err = svc.RefreshToken(context.Background(), resp.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
