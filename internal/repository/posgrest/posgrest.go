package posgrest

import (
	"context"
	"errors"

	"github.com/jeffleon2/draftea-checkout-gateway/internal/models"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T, plus the
// conditional status update the checkout state machine relies on.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// FindOne retrieves the first entity whose columns equal conds.
func (r *repository[T]) FindOne(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(conds).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// List retrieves the entities matching opts, honouring order and paging.
func (r *repository[T]) List(ctx context.Context, opts models.ListOptions) (*[]T, error) {
	var entities []T
	q := r.filtered(ctx, opts.Filters)
	if opts.Order != "" {
		q = q.Order(opts.Order)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// Count returns how many entities match filters.
func (r *repository[T]) Count(ctx context.Context, filters []models.Filter) (int64, error) {
	var total int64
	err := r.filtered(ctx, filters).Count(&total).Error
	return total, err
}

// UpdateColumns writes the given column values to the entity identified by ID.
// Zero values in values are written, unlike a struct-based Updates.
func (r *repository[T]) UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrRecordNotFound
	}
	return nil
}

// TransitionStatus moves the entity's status from one value to another in a
// single conditional UPDATE. It reports false, without error, when the row is
// missing or its status no longer equals from; concurrent callers racing on the
// same row therefore see exactly one winner.
func (r *repository[T]) TransitionStatus(ctx context.Context, id string, from, to interface{}) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository[T]) filtered(ctx context.Context, filters []models.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(new(T))
	for _, f := range filters {
		q = q.Where(f.Query, f.Args...)
	}
	return q
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return err
}
