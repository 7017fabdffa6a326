package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/yigit/university/internal/pkg/apperrors"
	"github.com/yigit/university/internal/pkg/dberrors"
	"gorm.io/gorm"
)

// ErrNoUnitOfWork is returned when a change is staged outside of a request scope.
var ErrNoUnitOfWork = errors.New("no unit of work in context")

type operation struct {
	name  string
	apply func(tx *gorm.DB) error
}

// UnitOfWork collects the changes staged during one request and commits
// them in a single transaction.
type UnitOfWork struct {
	db  *gorm.DB
	mu  sync.Mutex
	ops []operation
}

// NewUnitOfWork creates an empty unit of work on db
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

type unitOfWorkKey struct{}

// WithUnitOfWork returns a copy of ctx carrying uow
func WithUnitOfWork(ctx context.Context, uow *UnitOfWork) context.Context {
	return context.WithValue(ctx, unitOfWorkKey{}, uow)
}

// UnitOfWorkFrom returns the unit of work carried by ctx, if any
func UnitOfWorkFrom(ctx context.Context) (*UnitOfWork, bool) {
	uow, ok := ctx.Value(unitOfWorkKey{}).(*UnitOfWork)
	return uow, ok && uow != nil
}

func (u *UnitOfWork) stage(name string, apply func(tx *gorm.DB) error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.ops = append(u.ops, operation{name: name, apply: apply})
}

// Pending returns the number of staged, uncommitted changes
func (u *UnitOfWork) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.ops)
}

// Discard drops every staged change
func (u *UnitOfWork) Discard() {
	u.mu.Lock()
	u.ops = nil
	u.mu.Unlock()
}

// Commit applies all staged changes atomically. The staged list is cleared
// whether or not the commit succeeds.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	ops := u.ops
	u.ops = nil
	u.mu.Unlock()

	if len(ops) == 0 {
		return nil
	}

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range ops {
			if err := op.apply(tx); err != nil {
				return fmt.Errorf("%s: %w", op.name, err)
			}
		}
		return nil
	})
	if err != nil {
		if dberrors.IsConstraintViolation(err) {
			return constraintError(err)
		}
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	return nil
}

// constraintError wraps err in ErrConstraintViolation, naming the kind and
// the constraint when the driver reports them.
func constraintError(err error) error {
	kind := "integrity"
	if dberrors.IsForeignKeyViolation(err) {
		kind = "foreign key"
	}
	if name := dberrors.ConstraintName(err); name != "" {
		return fmt.Errorf("%w (%s %q): %w", apperrors.ErrConstraintViolation, kind, name, err)
	}
	return fmt.Errorf("%w (%s): %w", apperrors.ErrConstraintViolation, kind, err)
}
