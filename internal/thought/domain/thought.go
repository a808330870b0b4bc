package domain

import (
	"time"

	authdomain "happy-thoughts-backend/internal/auth/domain"
)

// Thought is a short user-authored message with a like counter. UserID is a
// weak reference set only when the server runs with authentication enabled;
// it is checked at creation time and never re-validated.
type Thought struct {
	ID        string           `json:"id" gorm:"primaryKey"`
	Message   string           `json:"message" gorm:"not null"`
	Hearts    int              `json:"hearts" gorm:"not null;default:0"`
	UserID    string           `json:"-" gorm:"index"`
	User      *authdomain.User `json:"-" gorm:"foreignKey:UserID"`
	CreatedAt time.Time        `json:"createdAt"`
}
