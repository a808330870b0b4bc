package domain

import "time"

type User struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"` // Never return password hash in JSON
	AccessToken string    `json:"accessToken" gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time `json:"createdAt"`
}
