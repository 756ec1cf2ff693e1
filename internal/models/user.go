package models

import "time"

// User represents a registered account.
type User struct {
	ID    string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name  string `json:"name" gorm:"type:varchar(255)"`
	Email string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	// Password holds the bcrypt hash, never the plaintext.
	Password  string    `json:"password,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"-"`
}
