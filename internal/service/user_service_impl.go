package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mnemo/internal/domain"
	"github.com/alexanderramin/mnemo/internal/repository"
	"github.com/google/uuid"
)

type userService struct {
	collections *repository.Collections
}

func NewUserService(collections *repository.Collections) UserService {
	return &userService{collections: collections}
}

func (s *userService) Login(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	// Re-login under the same name keeps the existing identity so decks
	// stay attached to their owner.
	current, err := s.collections.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.Username == username {
		return current, nil
	}

	user := domain.User{ID: uuid.New().String(), Username: username}
	if err := s.collections.SetCurrentUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) Current(ctx context.Context) (*domain.User, error) {
	return s.collections.CurrentUser(ctx)
}
