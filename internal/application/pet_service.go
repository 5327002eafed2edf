package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/domain"
	petDomain "github.com/Kilat-Pet-Delivery/service-pets/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/events"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/kafka"
)

const eventSource = "service-pets"

// PetRequest carries every mutable field of a pet. It is used for create,
// bulk create and full-overwrite update; absent fields are stored blank.
type PetRequest struct {
	Name        string  `json:"name" yaml:"name"`
	Species     string  `json:"species" yaml:"species"`
	Breed       string  `json:"breed" yaml:"breed"`
	Gender      string  `json:"gender" yaml:"gender"`
	Image       string  `json:"image" yaml:"image"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
}

// NewPetForm is the scalar-parameter variant of PetRequest accepted as query
// or form values. Every parameter must be present; text values may be blank.
// Pointers let "required" check presence: a blank value still binds non-nil.
type NewPetForm struct {
	Name        *string  `form:"name" binding:"required"`
	Species     *string  `form:"species" binding:"required"`
	Breed       *string  `form:"breed" binding:"required"`
	Gender      *string  `form:"gender" binding:"required"`
	Image       *string  `form:"image" binding:"required"`
	Description *string  `form:"description" binding:"required"`
	Price       *float64 `form:"price" binding:"required"`
}

// ToRequest converts the form into a PetRequest.
func (f NewPetForm) ToRequest() PetRequest {
	var price float64
	if f.Price != nil {
		price = *f.Price
	}
	return PetRequest{
		Name:        deref(f.Name),
		Species:     deref(f.Species),
		Breed:       deref(f.Breed),
		Gender:      deref(f.Gender),
		Image:       deref(f.Image),
		Description: deref(f.Description),
		Price:       price,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PetDTO is the API response representation of a pet.
type PetDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	Breed       string  `json:"breed"`
	Gender      string  `json:"gender"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// EventPublisher delivers CloudEvents to a topic.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, ce kafka.CloudEvent) error
}

// PetService implements use cases for pet record management.
type PetService struct {
	repo      petDomain.PetRepository
	publisher EventPublisher
	topic     string
	logger    *zap.Logger
}

// NewPetService creates a new PetService.
func NewPetService(repo petDomain.PetRepository, publisher EventPublisher, topic string, logger *zap.Logger) *PetService {
	if topic == "" {
		topic = events.DefaultTopic
	}
	return &PetService{repo: repo, publisher: publisher, topic: topic, logger: logger}
}

// CreatePet stores a new pet and returns it with its assigned id.
func (s *PetService) CreatePet(ctx context.Context, req PetRequest) (*PetDTO, error) {
	pet, err := s.repo.Insert(ctx, petDomain.NewPet(req.fields()))
	if err != nil {
		s.logger.Error("failed to create pet", zap.Error(err))
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	s.logger.Info("pet created", zap.Int64("pet_id", pet.ID()))
	s.publishChanged(ctx, events.PetCreated, pet)

	result := toPetDTO(pet)
	return &result, nil
}

// CreatePets stores all pets or none and returns them in request order.
func (s *PetService) CreatePets(ctx context.Context, reqs []PetRequest) ([]PetDTO, error) {
	pets := make([]*petDomain.Pet, len(reqs))
	for i, req := range reqs {
		pets[i] = petDomain.NewPet(req.fields())
	}

	stored, err := s.repo.InsertMany(ctx, pets)
	if err != nil {
		s.logger.Error("failed to bulk create pets", zap.Int("count", len(reqs)), zap.Error(err))
		return nil, fmt.Errorf("failed to create pets: %w", err)
	}

	s.logger.Info("pets bulk created", zap.Int("count", len(stored)))
	for _, p := range stored {
		s.publishChanged(ctx, events.PetCreated, p)
	}
	return toPetDTOs(stored), nil
}

// UpdatePet overwrites every field of an existing pet. A missing id yields a
// not-found error and nothing is written.
func (s *PetService) UpdatePet(ctx context.Context, id int64, req PetRequest) (*PetDTO, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pet.Replace(req.fields())
	updated, err := s.repo.Update(ctx, pet)
	if err != nil {
		s.logger.Error("failed to update pet", zap.Int64("pet_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	s.logger.Info("pet updated", zap.Int64("pet_id", id))
	s.publishChanged(ctx, events.PetUpdated, updated)

	result := toPetDTO(updated)
	return &result, nil
}

// ListPets returns every pet.
func (s *PetService) ListPets(ctx context.Context) ([]PetDTO, error) {
	pets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pets: %w", err)
	}
	return toPetDTOs(pets), nil
}

// GetPet returns a single pet by id.
func (s *PetService) GetPet(ctx context.Context, id int64) (*PetDTO, error) {
	pet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toPetDTO(pet)
	return &result, nil
}

// DeletePet removes a pet permanently.
func (s *PetService) DeletePet(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("pet deleted", zap.Int64("pet_id", id))
	s.publishEvent(ctx, events.PetDeleted, id, events.PetDeletedEvent{
		PetID:      id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// SearchPets returns pets whose name, species, breed, gender or description
// contains key.
func (s *PetService) SearchPets(ctx context.Context, key string) ([]PetDTO, error) {
	pets, err := s.repo.Search(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to search pets: %w", err)
	}
	return toPetDTOs(pets), nil
}

// FilterPetsByPrice returns pets priced at or below price. NaN and infinite
// thresholds are rejected since stores disagree on how they compare.
func (s *PetService) FilterPetsByPrice(ctx context.Context, price float64) ([]PetDTO, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, domain.NewValidationError("invalid price")
	}

	pets, err := s.repo.FindByMaxPrice(ctx, price)
	if err != nil {
		return nil, fmt.Errorf("failed to filter pets by price: %w", err)
	}
	return toPetDTOs(pets), nil
}

func (s *PetService) publishChanged(ctx context.Context, eventType string, p *petDomain.Pet) {
	s.publishEvent(ctx, eventType, p.ID(), events.PetChangedEvent{
		PetID:       p.ID(),
		Name:        p.Name(),
		Species:     p.Species(),
		Breed:       p.Breed(),
		Gender:      p.Gender(),
		Image:       p.Image(),
		Description: p.Description(),
		Price:       p.Price(),
		OccurredAt:  time.Now().UTC(),
	})
}

// publishEvent never fails the caller: the write it describes already happened.
func (s *PetService) publishEvent(ctx context.Context, eventType string, petID int64, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, s.topic, fmt.Sprint(petID), cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", s.topic),
			zap.String("event_type", eventType),
			zap.Int64("pet_id", petID),
			zap.Error(err),
		)
	}
}

func (r PetRequest) fields() petDomain.Fields {
	return petDomain.Fields{
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		Gender:      r.Gender,
		Image:       r.Image,
		Description: r.Description,
		Price:       r.Price,
	}
}

func toPetDTO(p *petDomain.Pet) PetDTO {
	return PetDTO{
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

func toPetDTOs(pets []*petDomain.Pet) []PetDTO {
	dtos := make([]PetDTO, len(pets))
	for i, p := range pets {
		dtos[i] = toPetDTO(p)
	}
	return dtos
}
