package dto

import "time"

// CreatePostRequest entrada para crear un post. El autor es el principal autenticado.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=300"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest entrada para actualizar un post.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=300"`
	Content *string `json:"content"`
}

// AuthorResponse campos públicos del autor de un post o comentario.
type AuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostResponse salida de un post sin relaciones.
type PostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostDetailResponse post con autor y comentarios (cada uno con su autor).
type PostDetailResponse struct {
	PostResponse
	User     AuthorResponse    `json:"user"`
	Comments []CommentResponse `json:"comments"`
}

// PostListResponse lista de posts con autor y comentarios.
type PostListResponse struct {
	Message string               `json:"message"`
	Data    []PostDetailResponse `json:"data"`
}
