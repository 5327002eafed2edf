package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/domain"
	petDomain "github.com/Kilat-Pet-Delivery/service-pets/internal/domain/pet"
)

// PetModel is the GORM model for the pets table.
type PetModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);index"`
	Species     string  `gorm:"type:varchar(255)"`
	Breed       string  `gorm:"type:varchar(255)"`
	Gender      string  `gorm:"type:varchar(255)"`
	Image       string  `gorm:"type:text"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:double precision"`
}

func (PetModel) TableName() string { return "pets" }

const searchCondition = `name LIKE ? ESCAPE '\' OR species LIKE ? ESCAPE '\' OR breed LIKE ? ESCAPE '\' ` +
	`OR gender LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GormPetRepository implements PetRepository using GORM.
type GormPetRepository struct {
	crud *CrudRepository[PetModel]
}

func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{crud: NewCrudRepository[PetModel](db)}
}

func (r *GormPetRepository) Insert(ctx context.Context, pet *petDomain.Pet) (*petDomain.Pet, error) {
	model := toPetModel(pet)
	model.ID = 0
	if err := r.crud.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to insert pet: %w", err)
	}
	return toPetDomain(model), nil
}

func (r *GormPetRepository) InsertMany(ctx context.Context, pets []*petDomain.Pet) ([]*petDomain.Pet, error) {
	models := make([]*PetModel, len(pets))
	for i, p := range pets {
		models[i] = toPetModel(p)
		models[i].ID = 0
	}
	if err := r.crud.CreateAll(ctx, models); err != nil {
		return nil, fmt.Errorf("failed to insert pets: %w", err)
	}
	return toPetDomains(models), nil
}

func (r *GormPetRepository) FindByID(ctx context.Context, id int64) (*petDomain.Pet, error) {
	model, err := r.crud.GetOne(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to find pet by ID: %w", err)
	}
	return toPetDomain(model), nil
}

func (r *GormPetRepository) FindAll(ctx context.Context) ([]*petDomain.Pet, error) {
	models, err := r.crud.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return toPetDomains(models), nil
}

// Update overwrites every column of an existing row. A missing row yields a
// not-found error and nothing is written.
func (r *GormPetRepository) Update(ctx context.Context, pet *petDomain.Pet) (*petDomain.Pet, error) {
	model := toPetModel(pet)
	rows, err := r.crud.UpdateAll(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}
	if rows == 0 {
		return nil, notFound(pet.ID())
	}
	return toPetDomain(model), nil
}

func (r *GormPetRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.crud.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if rows == 0 {
		return notFound(id)
	}
	return nil
}

// Search matches key literally; LIKE wildcards inside key are escaped.
func (r *GormPetRepository) Search(ctx context.Context, key string) ([]*petDomain.Pet, error) {
	pattern := "%" + likeEscaper.Replace(key) + "%"
	models, err := r.crud.Query(ctx, searchCondition, pattern, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search pets: %w", err)
	}
	return toPetDomains(models), nil
}

func (r *GormPetRepository) FindByMaxPrice(ctx context.Context, price float64) ([]*petDomain.Pet, error) {
	models, err := r.crud.Query(ctx, "price <= ?", price)
	if err != nil {
		return nil, fmt.Errorf("failed to filter pets by price: %w", err)
	}
	return toPetDomains(models), nil
}

func notFound(id int64) error {
	return domain.NewNotFoundError("Pet", strconv.FormatInt(id, 10))
}

// --- Conversions ---

func toPetModel(p *petDomain.Pet) *PetModel {
	return &PetModel{
		ID:          p.ID(),
		Name:        p.Name(),
		Species:     p.Species(),
		Breed:       p.Breed(),
		Gender:      p.Gender(),
		Image:       p.Image(),
		Description: p.Description(),
		Price:       p.Price(),
	}
}

func toPetDomain(m *PetModel) *petDomain.Pet {
	return petDomain.Reconstruct(m.ID, petDomain.Fields{
		Name:        m.Name,
		Species:     m.Species,
		Breed:       m.Breed,
		Gender:      m.Gender,
		Image:       m.Image,
		Description: m.Description,
		Price:       m.Price,
	})
}

func toPetDomains(models []*PetModel) []*petDomain.Pet {
	pets := make([]*petDomain.Pet, len(models))
	for i, m := range models {
		pets[i] = toPetDomain(m)
	}
	return pets
}
