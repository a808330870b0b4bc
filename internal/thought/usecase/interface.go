package usecase

import (
	authdomain "happy-thoughts-backend/internal/auth/domain"
	"happy-thoughts-backend/internal/thought/dto"
)

// ThoughtUsecase defines the interface for thought operations. The user
// argument on mutating operations is nil when the server runs without
// authentication; ownership checks apply only in authenticated mode.
type ThoughtUsecase interface {
	// List returns the most recent thoughts, newest first
	List() ([]*dto.ThoughtResponse, error)

	// Get returns a single thought by ID
	Get(id string) (*dto.ThoughtResponse, error)

	// Create stores a new thought, attributed to user when present
	Create(req *dto.CreateThoughtRequest, user *authdomain.User) (*dto.ThoughtResponse, error)

	// Update replaces the message of an owned thought
	Update(id string, req *dto.UpdateThoughtRequest, user *authdomain.User) (*dto.ThoughtResponse, error)

	// Delete removes an owned thought and returns its prior state
	Delete(id string, user *authdomain.User) (*dto.ThoughtResponse, error)

	// Like atomically increments the hearts counter
	Like(id string) (*dto.ThoughtResponse, error)
}
