package entity

import "time"

// Comment comentario de un Post, escrito por un User.
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	Content   string
	CreatedAt time.Time
}
