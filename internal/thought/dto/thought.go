package dto

import (
	"time"
	"unicode/utf8"

	"happy-thoughts-backend/internal/common"
	"happy-thoughts-backend/internal/thought/domain"
)

const (
	MinMessageLength = 5
	MaxMessageLength = 140
)

type CreateThoughtRequest struct {
	Message string `json:"message"`
}

type UpdateThoughtRequest struct {
	Message string `json:"message"`
}

// ThoughtUser is the only slice of the author exposed on a thought.
type ThoughtUser struct {
	Name string `json:"name"`
}

type ThoughtResponse struct {
	ID        string       `json:"id"`
	Message   string       `json:"message"`
	Hearts    int          `json:"hearts"`
	CreatedAt time.Time    `json:"createdAt"`
	User      *ThoughtUser `json:"user,omitempty"`
}

func NewThoughtResponse(t *domain.Thought) *ThoughtResponse {
	resp := &ThoughtResponse{
		ID:        t.ID,
		Message:   t.Message,
		Hearts:    t.Hearts,
		CreatedAt: t.CreatedAt,
	}
	if t.User != nil {
		resp.User = &ThoughtUser{Name: t.User.Name}
	}
	return resp
}

func NewThoughtResponseList(thoughts []*domain.Thought) []*ThoughtResponse {
	responses := make([]*ThoughtResponse, 0, len(thoughts))
	for _, t := range thoughts {
		responses = append(responses, NewThoughtResponse(t))
	}
	return responses
}

// ValidateMessage checks the 5-140 character constraint shared by create and
// update.
func ValidateMessage(message string) error {
	length := utf8.RuneCountInString(message)
	if length < MinMessageLength {
		return common.NewValidationError(common.FieldError{
			Field:   "message",
			Message: "must be at least 5 characters",
		})
	}
	if length > MaxMessageLength {
		return common.NewValidationError(common.FieldError{
			Field:   "message",
			Message: "must be at most 140 characters",
		})
	}
	return nil
}

func (r *CreateThoughtRequest) Validate() error {
	return ValidateMessage(r.Message)
}

func (r *UpdateThoughtRequest) Validate() error {
	return ValidateMessage(r.Message)
}
