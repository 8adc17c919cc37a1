package repository

import (
	"context"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
)

// CommentWithAuthor comentario más los campos públicos de su autor.
type CommentWithAuthor struct {
	Comment     entity.Comment
	AuthorName  string
	AuthorEmail string
}

// PostCommentCount fila agregada del resumen de comentarios: conteo por post.
type PostCommentCount struct {
	PostID        string
	PostTitle     string
	UserID        string
	UserName      string
	UserEmail     string
	CommentsCount int64
}

// CommentRepository define el puerto de persistencia y agregación para Comment.
type CommentRepository interface {
	Create(comment *entity.Comment) error
	// ListByPost comentarios de un post con autor, paginados, orden ascendente.
	ListByPost(postID string, limit, offset int) ([]CommentWithAuthor, error)
	CountByPost(postID string) (int64, error)
	// ListByPostIDs comentarios de varios posts (armar posts con comentarios).
	ListByPostIDs(postIDs []string) (map[string][]CommentWithAuthor, error)
	// Summary conteo de comentarios por post, filtrado por mínimo (minComments
	// < 0 desactiva el filtro), ordenado por conteo descendente y paginado
	// DESPUÉS de filtrar.
	Summary(ctx context.Context, minComments int64, limit, offset int) ([]PostCommentCount, error)
	// SummaryCount total de posts que pasan el filtro (para la paginación).
	SummaryCount(ctx context.Context, minComments int64) (int64, error)
}
