package services

import (
	"context"
	"fmt"

	"locatech/internal/models"
)

// CRUDRepository is the store contract one entity service drives.
// Implemented by the repositories package; faked in tests.
type CRUDRepository[T any] interface {
	FindByID(ctx context.Context, id int) (*T, error)
	FindAll(ctx context.Context, size, offset int) ([]T, error)
	Save(ctx context.Context, entity T) (int, int64, error)
	Update(ctx context.Context, entity T, id int) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// CRUDService applies the affected-row-count checks and pagination
// arithmetic shared by all three entities. Entity names the entity in
// save-failure messages; NotFound is the sentinel returned when an
// update or delete touches zero rows.
type CRUDService[T any] struct {
	Repo     CRUDRepository[T]
	Entity   string
	NotFound error
}

// List converts the 1-based page into an offset. Page and size below 1
// are clamped the same way the paged listings elsewhere in the codebase
// clamp them, so a negative offset never reaches the database.
func (s *CRUDService[T]) List(ctx context.Context, page, size int) ([]T, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	offset := (page - 1) * size
	return s.Repo.FindAll(ctx, size, offset)
}

// GetByID returns nil without an error when the entity is absent.
func (s *CRUDService[T]) GetByID(ctx context.Context, id int) (*T, error) {
	return s.Repo.FindByID(ctx, id)
}

// Create returns the assigned id. Anything but exactly one affected row
// is reported as a save failure.
func (s *CRUDService[T]) Create(ctx context.Context, entity T) (int, error) {
	id, affected, err := s.Repo.Save(ctx, entity)
	if err != nil {
		return 0, err
	}
	if affected != 1 {
		return 0, fmt.Errorf("%w: %s (%d rows affected)", models.ErrSaveFailed, s.Entity, affected)
	}
	return id, nil
}

func (s *CRUDService[T]) Update(ctx context.Context, entity T, id int) error {
	affected, err := s.Repo.Update(ctx, entity, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.NotFound
	}
	return nil
}

func (s *CRUDService[T]) Delete(ctx context.Context, id int) error {
	affected, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return s.NotFound
	}
	return nil
}
