package auth

import (
	"context"

	autherrors "github.com/Hemajnamburu/Job-Tracker-BE/internal/auth/errors"
	"github.com/Hemajnamburu/Job-Tracker-BE/internal/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (accessToken string, resp AuthResponse, err error)
	Profile(ctx context.Context, userID string) (*ProfileResponse, error)
}

type service struct {
	repo   Repository
	tokens *token.Service
	logger *zap.Logger
}

func NewService(repo Repository, tokens *token.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("register hash failed", zap.Error(err))
		return AuthResponse{}, err
	}

	user := &User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == autherrors.ErrEmailAlreadyRegistered {
			s.logger.Warn("register duplicate email", zap.String("email", req.Email))
		} else {
			s.logger.Error("register persist failed", zap.Error(err))
		}
		return AuthResponse{}, mapped
	}

	s.logger.Info("register success", zap.String("user_id", user.ID.String()))

	return AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Unknown user and wrong password look the same to the caller.
		s.logger.Warn("login unknown email", zap.String("email", email))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("login wrong password", zap.String("user_id", user.ID.String()))
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID.String(), user.Email)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()))

	return accessToken, AuthResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return &ProfileResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}, nil
}
