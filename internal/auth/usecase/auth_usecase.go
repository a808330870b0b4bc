package usecase

import (
	"fmt"

	authdomain "happy-thoughts-backend/internal/auth/domain"
	authdto "happy-thoughts-backend/internal/auth/dto"
	"happy-thoughts-backend/internal/auth/repository"
	"happy-thoughts-backend/internal/common"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already exists: %w", common.ErrConflict)
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	token, err := repository.GenerateAccessToken()
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    hashedPassword,
		AccessToken: token,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return authdto.NewUserResponse(user), nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found: %w", common.ErrNotFound)
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, fmt.Errorf("invalid password: %w", common.ErrUnauthorized)
	}

	return authdto.NewUserResponse(user), nil
}

func (u *authUsecase) ResolveToken(token string) (*authdomain.User, error) {
	if token == "" {
		return nil, fmt.Errorf("missing credential: %w", common.ErrUnauthorized)
	}

	user, err := u.userRepo.FindByAccessToken(token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credential: %w", common.ErrUnauthorized)
	}

	return user, nil
}
