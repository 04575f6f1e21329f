package models

// User represents a registered author
type User struct {
	Username string `json:"username" db:"username"`
}
