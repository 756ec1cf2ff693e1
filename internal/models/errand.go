package models

import "time"

// Errand represents a short text note ("recado") owned by a user.
// UserID is not a foreign key: errands outlive the user that created them.
type Errand struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description"`
	UserID      string    `json:"userId" gorm:"index;type:varchar(36)"`
	CreatedAt   time.Time `json:"-"`
}
