package entity

import "time"

// Post entrada del blog; pertenece a un User.
type Post struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
