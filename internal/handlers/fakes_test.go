package handlers

import (
	"context"
)

// stubRepo satisfies services.CRUDRepository with canned behavior.
type stubRepo[T any] struct {
	findByID func(id int) (*T, error)
	findAll  func(size, offset int) ([]T, error)
	save     func(entity T) (int, int64, error)
	update   func(entity T, id int) (int64, error)
	remove   func(id int) (int64, error)
}

func (s *stubRepo[T]) FindByID(_ context.Context, id int) (*T, error) {
	return s.findByID(id)
}

func (s *stubRepo[T]) FindAll(_ context.Context, size, offset int) ([]T, error) {
	return s.findAll(size, offset)
}

func (s *stubRepo[T]) Save(_ context.Context, entity T) (int, int64, error) {
	return s.save(entity)
}

func (s *stubRepo[T]) Update(_ context.Context, entity T, id int) (int64, error) {
	return s.update(entity, id)
}

func (s *stubRepo[T]) Delete(_ context.Context, id int) (int64, error) {
	return s.remove(id)
}
