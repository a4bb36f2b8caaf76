package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	UserName     string `json:"userName" db:"username"` // Display name
	Email        string `json:"email" db:"email"`       // Unique email
	PasswordHash string `json:"-" db:"password"`        // bcrypt hash
}
