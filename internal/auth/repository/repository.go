package repository

import authdomain "happy-thoughts-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, assigning its ID
	Create(user *authdomain.User) error

	// FindByEmail finds a user by email; returns (nil, nil) when absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByAccessToken finds the user holding the given bearer credential;
	// returns (nil, nil) when no user matches
	FindByAccessToken(token string) (*authdomain.User, error)

	// FindByID finds a user by ID; returns (nil, nil) when absent
	FindByID(id string) (*authdomain.User, error)
}
