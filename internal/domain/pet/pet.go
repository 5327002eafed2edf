package pet

import "strings"

// Pet is the aggregate root for a pet record. The id is assigned by the store
// on insert and stays fixed for the record's lifetime.
type Pet struct {
	id          int64
	name        string
	species     string
	breed       string
	gender      string
	image       string
	description string
	price       float64
}

// Fields holds every mutable attribute of a pet.
type Fields struct {
	Name        string
	Species     string
	Breed       string
	Gender      string
	Image       string
	Description string
	Price       float64
}

// NewPet creates an unsaved pet. Nothing is validated: blank text and any
// price are accepted as given.
func NewPet(f Fields) *Pet {
	p := &Pet{}
	p.apply(f)
	return p
}

// Reconstruct rebuilds a Pet from persistence data.
func Reconstruct(id int64, f Fields) *Pet {
	p := &Pet{id: id}
	p.apply(f)
	return p
}

// --- Getters ---

func (p *Pet) ID() int64           { return p.id }
func (p *Pet) Name() string        { return p.name }
func (p *Pet) Species() string     { return p.species }
func (p *Pet) Breed() string       { return p.breed }
func (p *Pet) Gender() string      { return p.gender }
func (p *Pet) Image() string       { return p.image }
func (p *Pet) Description() string { return p.description }
func (p *Pet) Price() float64      { return p.price }

// Fields returns a copy of the mutable attributes.
func (p *Pet) Fields() Fields {
	return Fields{
		Name:        p.name,
		Species:     p.species,
		Breed:       p.breed,
		Gender:      p.gender,
		Image:       p.image,
		Description: p.description,
		Price:       p.price,
	}
}

// --- Behavior ---

// Replace overwrites every mutable field, including ones the caller left blank.
func (p *Pet) Replace(f Fields) {
	p.apply(f)
}

// Matches reports whether key is contained in the name, species, breed, gender
// or description. The comparison is case-sensitive and the image is not searched.
func (p *Pet) Matches(key string) bool {
	for _, v := range []string{p.name, p.species, p.breed, p.gender, p.description} {
		if strings.Contains(v, key) {
			return true
		}
	}
	return false
}

// PricedAtMost reports whether the price does not exceed threshold.
func (p *Pet) PricedAtMost(threshold float64) bool {
	return p.price <= threshold
}

func (p *Pet) apply(f Fields) {
	p.name = f.Name
	p.species = f.Species
	p.breed = f.Breed
	p.gender = f.Gender
	p.image = f.Image
	p.description = f.Description
	p.price = f.Price
}
