package repository

import "github.com/jhoicas/Mercado-api/internal/domain/entity"

// PostWithAuthor post más los campos públicos de su autor.
type PostWithAuthor struct {
	Post        entity.Post
	AuthorName  string
	AuthorEmail string
}

// PostRepository define el puerto de persistencia para Post.
type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	// List lista posts con autor, ordenados por creación ascendente.
	// userID vacío lista todos; no vacío filtra por autor.
	List(userID string) ([]PostWithAuthor, error)
	// GetWithAuthor obtiene un post con autor; nil si no existe.
	GetWithAuthor(id string) (*PostWithAuthor, error)
}
