package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mcastros/clothing_store/internal/hash"
	"github.com/mcastros/clothing_store/internal/logging"
	"github.com/mcastros/clothing_store/internal/models"
	"github.com/mcastros/clothing_store/internal/mykafka"
	"github.com/mcastros/clothing_store/internal/repo"
	"github.com/mcastros/clothing_store/internal/tokens"
)

type UserService struct {
	Repo     *repo.GormRepo
	Tokens   *tokens.Manager
	Producer *mykafka.Producer
}

func roleAllowed(role string) bool {
	return role == "admin" || role == "user"
}

func (s *UserService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.UserEventsTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", mykafka.UserEventsTopic, "error", err)
	}
}

func (s *UserService) Register(ctx context.Context, username, password, role string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	if username == "" || password == "" || role == "" {
		return "", fmt.Errorf("%w: username, password, and role are required", ErrValidation)
	}
	if !roleAllowed(role) {
		return "", fmt.Errorf("%w: role must be either 'admin' or 'user'", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return "", err
	}

	user := models.User{
		Username:     username,
		PasswordHash: pwHash,
		Role:         role,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("register_error", "reason", "user already exist", "username", username)
			return "", fmt.Errorf("%w: username is taken", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return "", err
	}

	token, err := s.Tokens.CreateAccessToken(username, role, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		l.Error("register_error", "reason", "cannot sign access token", "error", err)
		return "", err
	}

	s.publish(ctx, username, map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": username,
		"role":     role,
	})

	return token, nil
}

func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "user.login", "username", username)

	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown username")
			return "", ErrInvalidCredentials
		}
		l.Error("login_failed", "error", err)
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "wrong password")
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.CreateAccessToken(user.Username, user.Role, time.Now().Add(tokens.AccessTokenTTL))
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign access token", "error", err)
		return "", err
	}

	s.publish(ctx, username, map[string]any{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": username,
	})

	return token, nil
}

func (s *UserService) Update(ctx context.Context, username, newPassword, newRole string) error {
	l := logging.FromContext(ctx).With("svc", "user.update", "username", username)

	if username == "" || newPassword == "" || newRole == "" {
		return fmt.Errorf("%w: username, new password, and new role are required", ErrValidation)
	}
	if !roleAllowed(newRole) {
		return fmt.Errorf("%w: role must be either 'admin' or 'user'", ErrValidation)
	}

	pwHash, err := hash.HashPassword(newPassword)
	if err != nil {
		l.Error("update_error", "reason", "cannot hash the password", "error", err)
		return err
	}

	if err := s.Repo.UpdateUser(ctx, username, pwHash, newRole); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("update_error", "reason", "user not found")
			return fmt.Errorf("%w: user does not exist", ErrNotFound)
		}
		l.Error("update_error", "error", err)
		return err
	}

	s.publish(ctx, username, map[string]any{
		"type":     "user_updated",
		"username": username,
		"role":     newRole,
	})

	return nil
}
