package repositories

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/yigit/university/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the data access contract shared by every entity.
// Add, Update and Delete only stage changes; Save commits them.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	// GetByID returns nil and no error when the row does not exist.
	GetByID(ctx context.Context, id int64) (*T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	Save(ctx context.Context) error
}

// GormRepository implements Repository on top of gorm and the request's unit of work
type GormRepository[T any] struct {
	db   *gorm.DB
	name string
}

// NewGormRepository creates a repository for the entity type T
func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{
		db:   db,
		name: reflect.TypeOf((*T)(nil)).Elem().Name(),
	}
}

// GetAll returns every row ordered by primary key
func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}}).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("error querying %s rows: %w", r.name, err)
	}
	return items, nil
}

// GetByID retrieves a row by primary key
func (r *GormRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting %s by ID: %w", r.name, err)
	}
	return &entity, nil
}

// Add stages an insert. The identity is assigned on Save.
func (r *GormRepository[T]) Add(ctx context.Context, entity *T) error {
	uow, err := r.unitOfWork(ctx, entity, "add")
	if err != nil {
		return err
	}
	uow.stage("insert "+r.name, func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(entity).Error
	})
	return nil
}

// Update stages a full replace of the row with the entity's primary key.
// Existence is not checked.
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) error {
	uow, err := r.unitOfWork(ctx, entity, "update")
	if err != nil {
		return err
	}
	uow.stage("update "+r.name, func(tx *gorm.DB) error {
		return tx.Model(entity).Select("*").Omit(clause.Associations).Updates(entity).Error
	})
	return nil
}

// Delete stages removal of the row with the entity's primary key
func (r *GormRepository[T]) Delete(ctx context.Context, entity *T) error {
	uow, err := r.unitOfWork(ctx, entity, "delete")
	if err != nil {
		return err
	}
	uow.stage("delete "+r.name, func(tx *gorm.DB) error {
		return tx.Delete(entity).Error
	})
	return nil
}

// Save commits every change staged in the request's unit of work
func (r *GormRepository[T]) Save(ctx context.Context) error {
	uow, ok := UnitOfWorkFrom(ctx)
	if !ok {
		return ErrNoUnitOfWork
	}
	return uow.Commit(ctx)
}

func (r *GormRepository[T]) unitOfWork(ctx context.Context, entity *T, action string) (*UnitOfWork, error) {
	if entity == nil {
		return nil, fmt.Errorf("%s %s: %w", action, r.name, apperrors.ErrMissingArgument)
	}
	uow, ok := UnitOfWorkFrom(ctx)
	if !ok {
		return nil, ErrNoUnitOfWork
	}
	return uow, nil
}
