package entities

import "time"

const RoleAdmin = "ROLE_ADMIN"

// User is an API account. Password holds the bcrypt hash, never the
// plain text.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"size:100;not null"`
	Role      string    `json:"role" gorm:"size:30;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
