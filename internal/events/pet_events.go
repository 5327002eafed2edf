package events

import "time"

// DefaultTopic is the topic pet lifecycle events are published to.
const DefaultTopic = "pet.events"

// Event types.
const (
	PetCreated = "pet.created"
	PetUpdated = "pet.updated"
	PetDeleted = "pet.deleted"
)

// PetChangedEvent is the payload of pet.created and pet.updated. It carries
// the full record as stored after the write.
type PetChangedEvent struct {
	PetID       int64     `json:"pet_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed"`
	Gender      string    `json:"gender"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// PetDeletedEvent is the payload of pet.deleted.
type PetDeletedEvent struct {
	PetID      int64     `json:"pet_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
