package blog

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// CommentUseCase aplica reglas de negocio para comentarios: listado paginado
// por post y resumen de conteos.
type CommentUseCase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewCommentUseCase construye el caso de uso con los puertos de persistencia.
func NewCommentUseCase(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *CommentUseCase {
	return &CommentUseCase{postRepo: postRepo, commentRepo: commentRepo}
}

// ListByPost lista los comentarios de un post, paginados con estilo
// page/limit y orden de creación ascendente. ErrNotFound si el post no existe.
func (uc *CommentUseCase) ListByPost(postID string, page, limit int) (*dto.CommentListResponse, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	comments, err := uc.commentRepo.ListByPost(postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando comentarios: %w", err)
	}
	total, err := uc.commentRepo.CountByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("contando comentarios: %w", err)
	}

	data := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		data = append(data, toCommentResponse(&c))
	}
	return &dto.CommentListResponse{
		Message:    "Comments list",
		Data:       data,
		Pagination: pagedMeta(total, page, limit),
	}, nil
}

// Summary devuelve el conteo de comentarios por post, con filtro opcional de
// mínimo de comentarios, ordenado por conteo descendente. La paginación se
// aplica DESPUÉS de filtrar y el total refleja el conjunto filtrado.
func (uc *CommentUseCase) Summary(ctx context.Context, minComments int64, page, limit int) (*dto.CommentSummaryResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	rows, err := uc.commentRepo.Summary(ctx, minComments, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("resumen de comentarios: %w", err)
	}
	total, err := uc.commentRepo.SummaryCount(ctx, minComments)
	if err != nil {
		return nil, fmt.Errorf("total del resumen: %w", err)
	}

	data := make([]dto.CommentSummaryItem, 0, len(rows))
	for _, r := range rows {
		data = append(data, dto.CommentSummaryItem{
			PostID:        r.PostID,
			PostTitle:     r.PostTitle,
			User:          dto.AuthorResponse{ID: r.UserID, Name: r.UserName, Email: r.UserEmail},
			CommentsCount: r.CommentsCount,
		})
	}
	return &dto.CommentSummaryResponse{
		Message:    "Comment summary per post",
		Data:       data,
		Pagination: pagedMeta(total, page, limit),
	}, nil
}

func pagedMeta(total int64, page, limit int) dto.PagedResponse {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return dto.PagedResponse{Total: total, Page: page, Limit: limit, Pages: pages}
}
