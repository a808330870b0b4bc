package usecase

import (
	authdomain "happy-thoughts-backend/internal/auth/domain"
	authdto "happy-thoughts-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for registration, login and bearer
// credential resolution
type AuthUsecase interface {
	// Register creates a new user and issues its access token
	Register(req *authdto.RegisterRequest) (*authdto.UserResponse, error)

	// Login verifies credentials and returns the token issued at registration
	Login(req *authdto.LoginRequest) (*authdto.UserResponse, error)

	// ResolveToken maps a bearer credential to its user
	ResolveToken(token string) (*authdomain.User, error)
}
