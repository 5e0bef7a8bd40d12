package service

import (
	"context"

	"github.com/saurabh1105/Socail-Connect/internal/auth"
	"github.com/saurabh1105/Socail-Connect/internal/model"
	"github.com/saurabh1105/Socail-Connect/internal/repo"
	"go.uber.org/zap"
)

type UserService interface {
	// Register creates the user and returns a signed token for it.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)
	Load(ctx context.Context, userID string) (*model.User, error)
	// DeleteAccount removes the user, its profile and all its posts.
	DeleteAccount(ctx context.Context, userID string) error
}

type userService struct {
	users  repo.UserRepository
	tokens *auth.Manager
	logger *zap.Logger
}

func NewUserService(users repo.UserRepository, tokens *auth.Manager, logger *zap.Logger) UserService {
	return &userService{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Avatar:   auth.GravatarURL(email),
	}
	user, err = s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID.Hex()))
	return s.tokens.Issue(user.ID.Hex())
}

func (s *userService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", auth.ErrInvalidLogin
	}
	if err := auth.CheckPassword(user.Password, password); err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID.Hex())
}

func (s *userService) Load(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.users.DeleteCascade(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", userID))
	return nil
}
