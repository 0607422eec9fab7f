package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "construct-erp/internal/auth/errors"
	"construct-erp/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultTokenTTL   = 7 * 24 * time.Hour
	MinPasswordLength = 4
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (*AuthResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	CreateUser(ctx context.Context, req CreateUserRequest) (AuthResponse, error)
}

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type service struct {
	repo   Repository
	tokens TokenConfig
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if tokens.TTL <= 0 {
		tokens.TTL = DefaultTokenTTL
	}
	return &service{repo: repo, tokens: tokens, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		s.logger.Warn("login unknown username", zap.String("username", username))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", user.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.Error("login sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return LoginResponse{User: mapToResponse(*user), Token: token}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	resp := mapToResponse(*u)
	return &resp, nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}
	if len(req.NewPassword) < MinPasswordLength {
		return autherrors.ErrPasswordTooShort
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrCurrentPasswordWrong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("change password success", zap.String("user_id", userID))
	return nil
}

func (s *service) CreateUser(ctx context.Context, req CreateUserRequest) (AuthResponse, error) {
	if !domain.IsKnownRole(req.Role) {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}
	if len(req.Password) < MinPasswordLength {
		return AuthResponse{}, autherrors.ErrPasswordTooShort
	}

	var siteID *uuid.UUID
	if req.SiteID != "" {
		id, err := uuid.Parse(req.SiteID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrSiteRequired
		}
		siteID = &id
	}
	if siteID == nil && req.Role != domain.RoleAdmin {
		return AuthResponse{}, autherrors.ErrSiteRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	name := req.Name
	if name == "" {
		name = req.Username
	}
	user := &User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(req.Username),
		Name:         name,
		PasswordHash: string(hashed),
		Role:         req.Role,
		SiteID:       siteID,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return AuthResponse{}, autherrors.ErrUsernameTaken
		}
		return AuthResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return mapToResponse(*user), nil
}

func (s *service) generateToken(u *User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"name":     u.Name,
		"role":     u.Role,
		"exp":      s.now().Add(s.tokens.TTL).Unix(),
		"iat":      s.now().Unix(),
	}
	if u.SiteID != nil {
		claims["site_id"] = u.SiteID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func mapToResponse(u User) AuthResponse {
	resp := AuthResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
	if u.SiteID != nil {
		v := u.SiteID.String()
		resp.SiteID = &v
	}
	return resp
}
