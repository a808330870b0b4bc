package dto

import (
	"net/mail"
	"unicode/utf8"

	authdomain "happy-thoughts-backend/internal/auth/domain"
	"happy-thoughts-backend/internal/common"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the shape returned by register and login. The password hash
// never leaves the repository layer.
type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

func NewUserResponse(user *authdomain.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: user.AccessToken,
	}
}

// Validate checks the registration payload against the User constraints and
// returns nil or a ValidationError with one entry per invalid field.
func (r *RegisterRequest) Validate() error {
	var fields []common.FieldError

	if utf8.RuneCountInString(r.Name) < MinNameLength {
		fields = append(fields, common.FieldError{Field: "name", Message: "must be at least 2 characters"})
	}
	if r.Email == "" {
		fields = append(fields, common.FieldError{Field: "email", Message: "is required"})
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		fields = append(fields, common.FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		fields = append(fields, common.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	if len(fields) > 0 {
		return common.NewValidationError(fields...)
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	var fields []common.FieldError

	if r.Email == "" {
		fields = append(fields, common.FieldError{Field: "email", Message: "is required"})
	}
	if r.Password == "" {
		fields = append(fields, common.FieldError{Field: "password", Message: "is required"})
	}

	if len(fields) > 0 {
		return common.NewValidationError(fields...)
	}
	return nil
}
