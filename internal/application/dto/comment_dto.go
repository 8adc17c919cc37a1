package dto

import "time"

// CommentResponse comentario con su autor.
type CommentResponse struct {
	ID        string         `json:"id"`
	PostID    string         `json:"post_id"`
	Content   string         `json:"content"`
	User      AuthorResponse `json:"user"`
	CreatedAt time.Time      `json:"created_at"`
}

// CommentListResponse comentarios paginados de un post.
type CommentListResponse struct {
	Message    string            `json:"message"`
	Data       []CommentResponse `json:"data"`
	Pagination PagedResponse     `json:"pagination"`
}

// CommentSummaryItem fila del resumen: post + autor + conteo de comentarios.
type CommentSummaryItem struct {
	PostID        string         `json:"postId"`
	PostTitle     string         `json:"postTitle"`
	User          AuthorResponse `json:"user"`
	CommentsCount int64          `json:"commentsCount"`
}

// CommentSummaryResponse resumen paginado de comentarios por post.
type CommentSummaryResponse struct {
	Message    string               `json:"message"`
	Data       []CommentSummaryItem `json:"data"`
	Pagination PagedResponse        `json:"pagination"`
}
