package cats

import (
	"context"
	"fmt"

	"cats-api/internal/errs"
	"cats-api/internal/platform/logger"
)

const (
	msgNotFound   = "No cats found"
	msgNotAdded   = "No cats added"
	msgNotUpdated = "No cats updated"
	msgNotDeleted = "No cats deleted"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"module": "cats"}),
	}
}

// List devuelve todos los gatos con su dueño. Una tabla vacía es un 404, no una lista vacía.
func (s *Service) List(ctx context.Context) ([]Cat, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cats: %w", err)
	}
	if len(items) == 0 {
		return nil, errs.NewNotFoundError(msgNotFound)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Cat, error) {
	c, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Cat{}, fmt.Errorf("get cat %d: %w", id, err)
	}
	if !ok {
		return Cat{}, errs.NewNotFoundError(msgNotFound)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, in NewCat) (int64, error) {
	id, affected, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, fmt.Errorf("create cat: %w", err)
	}
	if affected == 0 {
		return 0, errs.NewBadRequestError(msgNotAdded)
	}

	s.log.Info("cat added", map[string]any{"cat_id": id, "owner": in.OwnerID})
	return id, nil
}

// Update aplica p sólo si scope lo permite. Un no-dueño y un id inexistente
// son indistinguibles: ambos afectan 0 filas.
func (s *Service) Update(ctx context.Context, id int64, p Patch, scope Scope) error {
	if p.IsEmpty() {
		return errs.NewBadRequestError("Validation failed: no fields to update")
	}

	affected, err := s.repo.Update(ctx, id, p, scope)
	if err != nil {
		return fmt.Errorf("update cat %d: %w", id, err)
	}
	if affected == 0 {
		return errs.NewBadRequestError(msgNotUpdated)
	}

	s.log.Info("cat updated", map[string]any{"cat_id": id, "actor": scope.ActorID, "admin": scope.Admin})
	return nil
}

// Delete borra por id sin mirar al dueño; el handler sólo exige un usuario autenticado.
func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cat %d: %w", id, err)
	}
	if affected == 0 {
		return errs.NewBadRequestError(msgNotDeleted)
	}

	s.log.Info("cat deleted", map[string]any{"cat_id": id})
	return nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Cat, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cats of user %d: %w", ownerID, err)
	}
	if len(items) == 0 {
		return nil, errs.NewNotFoundError(msgNotFound)
	}
	return items, nil
}
