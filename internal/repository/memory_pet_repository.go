package repository

import (
	"context"
	"sort"
	"sync"

	petDomain "github.com/Kilat-Pet-Delivery/service-pets/internal/domain/pet"
)

// MemoryPetRepository is an in-process PetRepository. Ids come from a counter
// that only moves forward, so deleted ids are never handed out again.
type MemoryPetRepository struct {
	mu     sync.RWMutex
	byID   map[int64]petDomain.Fields
	nextID int64
}

func NewMemoryPetRepository() *MemoryPetRepository {
	return &MemoryPetRepository{
		byID:   make(map[int64]petDomain.Fields),
		nextID: 1,
	}
}

func (r *MemoryPetRepository) Insert(_ context.Context, pet *petDomain.Pet) (*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(pet), nil
}

func (r *MemoryPetRepository) InsertMany(_ context.Context, pets []*petDomain.Pet) ([]*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*petDomain.Pet, len(pets))
	for i, p := range pets {
		out[i] = r.insertLocked(p)
	}
	return out, nil
}

func (r *MemoryPetRepository) FindByID(_ context.Context, id int64) (*petDomain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return nil, notFound(id)
	}
	return petDomain.Reconstruct(id, f), nil
}

func (r *MemoryPetRepository) FindAll(_ context.Context) ([]*petDomain.Pet, error) {
	return r.filter(func(*petDomain.Pet) bool { return true }), nil
}

func (r *MemoryPetRepository) Update(_ context.Context, pet *petDomain.Pet) (*petDomain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[pet.ID()]; !ok {
		return nil, notFound(pet.ID())
	}
	r.byID[pet.ID()] = pet.Fields()
	return petDomain.Reconstruct(pet.ID(), pet.Fields()), nil
}

func (r *MemoryPetRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return notFound(id)
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryPetRepository) Search(_ context.Context, key string) ([]*petDomain.Pet, error) {
	return r.filter(func(p *petDomain.Pet) bool { return p.Matches(key) }), nil
}

func (r *MemoryPetRepository) FindByMaxPrice(_ context.Context, price float64) ([]*petDomain.Pet, error) {
	return r.filter(func(p *petDomain.Pet) bool { return p.PricedAtMost(price) }), nil
}

func (r *MemoryPetRepository) insertLocked(pet *petDomain.Pet) *petDomain.Pet {
	id := r.nextID
	r.nextID++
	r.byID[id] = pet.Fields()
	return petDomain.Reconstruct(id, pet.Fields())
}

// filter returns matching pets ordered by id.
func (r *MemoryPetRepository) filter(keep func(*petDomain.Pet) bool) []*petDomain.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*petDomain.Pet, 0, len(r.byID))
	for id, f := range r.byID {
		if p := petDomain.Reconstruct(id, f); keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
