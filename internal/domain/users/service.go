package users

import (
	"context"
	"fmt"

	"cats-api/internal/errs"
	"cats-api/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{repo: repo, log: log.With(map[string]any{"module": "users"})}
}

func (s *Service) Create(ctx context.Context, u User) (int64, error) {
	if u.Role == "" {
		u.Role = RoleUser
	}

	id, affected, err := s.repo.Create(ctx, u)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	if affected == 0 {
		return 0, errs.NewBadRequestError("No users added")
	}

	s.log.Info("user added", map[string]any{"user_id": id, "role": u.Role})
	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	u, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	if !ok {
		return User{}, errs.NewNotFoundError("No users found")
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(items) == 0 {
		return nil, errs.NewNotFoundError("No users found")
	}
	return items, nil
}
