package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockRepository[T any] struct {
	mock.Mock
}

func (m *mockRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *mockRepository[T]) Add(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepository[T]) Update(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepository[T]) Delete(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

func (m *mockRepository[T]) Save(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
