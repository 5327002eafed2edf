package repository

import (
	"context"

	"gorm.io/gorm"
)

// CrudRepository is a generic GORM repository for a model keyed by an "id"
// column. Aggregate repositories embed it and translate to domain types.
type CrudRepository[M any] struct {
	db *gorm.DB
}

// NewCrudRepository returns a CRUD repository backed by db.
func NewCrudRepository[M any](db *gorm.DB) *CrudRepository[M] {
	return &CrudRepository[M]{db: db}
}

// Create inserts model and fills its generated primary key.
func (r *CrudRepository[M]) Create(ctx context.Context, model *M) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateAll inserts models in one transaction: either all rows are stored or none.
func (r *CrudRepository[M]) CreateAll(ctx context.Context, models []*M) error {
	if len(models) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(models, 100).Error
	})
}

// GetOne returns the row with the given id or gorm.ErrRecordNotFound.
func (r *CrudRepository[M]) GetOne(ctx context.Context, id any) (*M, error) {
	var model M
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// GetAll returns every row ordered by id.
func (r *CrudRepository[M]) GetAll(ctx context.Context) ([]*M, error) {
	return r.Query(ctx, nil)
}

// Query returns rows matching the condition ordered by id. A nil condition
// matches everything.
func (r *CrudRepository[M]) Query(ctx context.Context, query interface{}, args ...interface{}) ([]*M, error) {
	var models []*M
	tx := r.db.WithContext(ctx)
	if query != nil {
		tx = tx.Where(query, args...)
	}
	if err := tx.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// UpdateAll writes every column of model, zero values included, to the row
// with model's primary key. It reports how many rows were changed and never
// inserts.
func (r *CrudRepository[M]) UpdateAll(ctx context.Context, model *M) (int64, error) {
	result := r.db.WithContext(ctx).Model(model).Select("*").Updates(model)
	return result.RowsAffected, result.Error
}

// Delete removes the row with the given id and reports how many rows went away.
func (r *CrudRepository[M]) Delete(ctx context.Context, id any) (int64, error) {
	result := r.db.WithContext(ctx).Delete(new(M), id)
	return result.RowsAffected, result.Error
}
