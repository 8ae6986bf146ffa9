package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the data access contract shared by every entity table.
// Services depend on this interface, not on the GORM implementation, so they
// can be tested against in-memory fakes.
type Repository[T any] interface {
	Create(ctx context.Context, e *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	// List returns one window of rows in primary key order plus the total row count.
	List(ctx context.Context, offset, limit int) ([]T, int64, error)
	Update(ctx context.Context, e *T) error
	// Delete returns gorm.ErrRecordNotFound when no row matched.
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) (bool, error)

	// WithTx binds the repository to an open transaction. Callers own the tx.
	WithTx(tx *gorm.DB) Repository[T]
}

// Transactor opens database transactions for services that touch more than
// one table in a single write.
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTransactor struct{ db *gorm.DB }

func NewTransactor(db *gorm.DB) Transactor { return &gormTransactor{db: db} }

func (t *gormTransactor) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}

type gormRepository[T any] struct{ db *gorm.DB }

func newGormRepository[T any](db *gorm.DB) *gormRepository[T] {
	return &gormRepository[T]{db: db}
}

func (r *gormRepository[T]) Create(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var e T
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository[T]) List(ctx context.Context, offset, limit int) ([]T, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(new(T)), offset, limit)
}

// list counts and pages an already-filtered query.
func (r *gormRepository[T]) list(_ context.Context, q *gorm.DB, offset, limit int) ([]T, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]T, 0, limit)
	err := q.Order("id ASC").Limit(limit).Offset(offset).Find(&rows).Error
	return rows, total, err
}

func (r *gormRepository[T]) Update(ctx context.Context, e *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error
}

func (r *gormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}

func (r *gormRepository[T]) WithTx(tx *gorm.DB) Repository[T] {
	return newGormRepository[T](tx)
}
