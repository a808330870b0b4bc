package repository

import "happy-thoughts-backend/internal/thought/domain"

// ThoughtRepository defines the interface for thought data access
type ThoughtRepository interface {
	// Create persists a new thought, assigning its ID and creation time
	Create(thought *domain.Thought) error

	// FindByID finds a thought by ID with its author preloaded; returns
	// (nil, nil) when absent
	FindByID(id string) (*domain.Thought, error)

	// FindRecent returns up to limit thoughts ordered newest first, authors
	// preloaded
	FindRecent(limit int) ([]*domain.Thought, error)

	// UpdateMessage replaces the message of an existing thought
	UpdateMessage(id, message string) error

	// Delete removes a thought by ID
	Delete(id string) error

	// IncrementHearts adds 1 to the hearts counter in a single atomic store
	// operation; returns false when no thought matched the ID
	IncrementHearts(id string) (bool, error)

	// DeleteAll wipes the collection (used by the seed loader)
	DeleteAll() error
}
