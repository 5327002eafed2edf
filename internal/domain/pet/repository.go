package pet

import (
	"context"
)

// PetRepository defines persistence operations for pet records.
// Lookups of a missing id return a domain not-found error.
type PetRepository interface {
	Insert(ctx context.Context, pet *Pet) (*Pet, error)
	InsertMany(ctx context.Context, pets []*Pet) ([]*Pet, error)
	FindByID(ctx context.Context, id int64) (*Pet, error)
	FindAll(ctx context.Context) ([]*Pet, error)
	Update(ctx context.Context, pet *Pet) (*Pet, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, key string) ([]*Pet, error)
	FindByMaxPrice(ctx context.Context, price float64) ([]*Pet, error)
}
