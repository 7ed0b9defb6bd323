package domain

import "github.com/google/uuid"

// Service is a single bookable salon service
type Service struct {
	ID              uuid.UUID
	Slug            string
	Title           LocalizedText
	Description     LocalizedText
	DurationMinutes int
	BasePrice       float64
	IsActive        bool
}
