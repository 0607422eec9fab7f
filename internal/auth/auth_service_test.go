package auth_test

import (
	"context"
	"errors"
	"testing"

	"construct-erp/internal/auth"
	autherrors "construct-erp/internal/auth/errors"
	authMock "construct-erp/internal/auth/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, auth.TokenConfig{Secret: testSecret})
	ctx := context.Background()

	siteID := uuid.New()
	user := &auth.User{
		ID:           uuid.New(),
		Username:     "foreman1",
		Name:         "Ravi Kumar",
		PasswordHash: hashed(t, "secret"),
		Role:         "foreman",
		SiteID:       &siteID,
		IsActive:     true,
	}

	t.Run("success issues token with site claim", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "foreman1").Return(user, nil)

		resp, err := service.Login(ctx, "foreman1", "secret")
		require.NoError(t, err)
		assert.Equal(t, "foreman1", resp.User.Username)
		require.NotNil(t, resp.User.SiteID)
		assert.Equal(t, siteID.String(), *resp.User.SiteID)

		token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, "foreman", claims["role"])
		assert.Equal(t, siteID.String(), claims["site_id"])
		assert.Equal(t, "Ravi Kumar", claims["name"])
		assert.Equal(t, "foreman1", claims["username"])
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "foreman1").Return(user, nil)

		_, err := service.Login(ctx, "foreman1", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Login(ctx, "ghost", "secret")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("repository failure is not masked", func(t *testing.T) {
		mockRepo.EXPECT().GetByUsername(ctx, "foreman1").Return(nil, errors.New("db down"))

		_, err := service.Login(ctx, "foreman1", "secret")
		assert.EqualError(t, err, "db down")
	})
}

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, auth.TokenConfig{Secret: testSecret})
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		_, err := service.GetMe(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.GetMe(ctx, id.String())
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("admin has no site", func(t *testing.T) {
		id := uuid.New()
		mockRepo.EXPECT().GetByID(ctx, id).Return(&auth.User{ID: id, Username: "admin", Role: "admin"}, nil)

		resp, err := service.GetMe(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "admin", resp.Role)
		assert.Nil(t, resp.SiteID)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, auth.TokenConfig{Secret: testSecret})
	ctx := context.Background()

	id := uuid.New()
	user := &auth.User{ID: id, Username: "incharge", PasswordHash: hashed(t, "old-pass")}

	t.Run("too short", func(t *testing.T) {
		err := service.ChangePassword(ctx, id.String(), auth.ChangePasswordRequest{CurrentPassword: "old-pass", NewPassword: "abc"})
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(user, nil)

		err := service.ChangePassword(ctx, id.String(), auth.ChangePasswordRequest{CurrentPassword: "bad", NewPassword: "abcd"})
		assert.ErrorIs(t, err, autherrors.ErrCurrentPasswordWrong)
	})

	t.Run("success stores a new hash", func(t *testing.T) {
		mockRepo.EXPECT().GetByID(ctx, id).Return(user, nil)
		mockRepo.EXPECT().
			UpdatePassword(ctx, id, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("abcd")))
				return nil
			})

		err := service.ChangePassword(ctx, id.String(), auth.ChangePasswordRequest{CurrentPassword: "old-pass", NewPassword: "abcd"})
		assert.NoError(t, err)
	})
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := authMock.NewMockRepository(ctrl)
	service := auth.NewService(mockRepo, auth.TokenConfig{Secret: testSecret})
	ctx := context.Background()

	t.Run("foreman without site", func(t *testing.T) {
		_, err := service.CreateUser(ctx, auth.CreateUserRequest{Username: "f", Password: "pass", Role: "foreman"})
		assert.ErrorIs(t, err, autherrors.ErrSiteRequired)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := service.CreateUser(ctx, auth.CreateUserRequest{Username: "f", Password: "pass", Role: "owner"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("admin without site", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := service.CreateUser(ctx, auth.CreateUserRequest{Username: "root", Password: "pass", Role: "admin"})
		require.NoError(t, err)
		assert.Equal(t, "root", resp.Name)
		assert.Nil(t, resp.SiteID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockRepo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := service.CreateUser(ctx, auth.CreateUserRequest{Username: "root", Password: "pass", Role: "admin"})
		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
	})
}
