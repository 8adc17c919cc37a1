package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo implementación del puerto CommentRepository sobre PostgreSQL.
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

// Create persiste un nuevo comentario.
func (r *CommentRepo) Create(comment *entity.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		comment.ID, comment.PostID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByPost comentarios de un post con autor, orden ascendente, paginados.
func (r *CommentRepo) ListByPost(postID string, limit, offset int) ([]repository.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at, u.name, u.email
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var list []repository.CommentWithAuthor
	for rows.Next() {
		var item repository.CommentWithAuthor
		if err := rows.Scan(&item.Comment.ID, &item.Comment.PostID, &item.Comment.UserID,
			&item.Comment.Content, &item.Comment.CreatedAt, &item.AuthorName, &item.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// CountByPost total de comentarios de un post.
func (r *CommentRepo) CountByPost(postID string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return total, nil
}

// ListByPostIDs comentarios (con autor) de varios posts, como mapa post_id -> comentarios.
func (r *CommentRepo) ListByPostIDs(postIDs []string) (map[string][]repository.CommentWithAuthor, error) {
	result := make(map[string][]repository.CommentWithAuthor, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	query := `
		SELECT c.id, c.post_id, c.user_id, c.content, c.created_at, u.name, u.email
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = ANY($1)
		ORDER BY c.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, postIDs)
	if err != nil {
		return nil, fmt.Errorf("list comments by posts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item repository.CommentWithAuthor
		if err := rows.Scan(&item.Comment.ID, &item.Comment.PostID, &item.Comment.UserID,
			&item.Comment.Content, &item.Comment.CreatedAt, &item.AuthorName, &item.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		result[item.Comment.PostID] = append(result[item.Comment.PostID], item)
	}
	return result, rows.Err()
}

// Summary conteo de comentarios por post con datos del autor del post.
// El filtro de mínimo va en HAVING (se aplica ANTES de paginar); orden por
// conteo descendente con desempate por post para salida estable.
func (r *CommentRepo) Summary(ctx context.Context, minComments int64, limit, offset int) ([]repository.PostCommentCount, error) {
	query := `
		SELECT p.id, p.title, u.id, u.name, u.email, COUNT(c.id) AS comments_count
		FROM posts p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN comments c ON c.post_id = p.id
		GROUP BY p.id, u.id`
	args := []any{limit, offset}
	if minComments >= 0 {
		query += "\n\t\tHAVING COUNT(c.id) >= $3"
		args = append(args, minComments)
	}
	query += "\n\t\tORDER BY comments_count DESC, p.id ASC\n\t\tLIMIT $1 OFFSET $2"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("comments.Summary: %w", err)
	}
	defer rows.Close()
	var list []repository.PostCommentCount
	for rows.Next() {
		var row repository.PostCommentCount
		if err := rows.Scan(&row.PostID, &row.PostTitle, &row.UserID, &row.UserName, &row.UserEmail, &row.CommentsCount); err != nil {
			return nil, fmt.Errorf("comments.Summary scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SummaryCount total de posts que pasan el filtro de mínimo de comentarios.
func (r *CommentRepo) SummaryCount(ctx context.Context, minComments int64) (int64, error) {
	query := `
		SELECT COUNT(*) FROM (
			SELECT p.id
			FROM posts p
			LEFT JOIN comments c ON c.post_id = p.id
			GROUP BY p.id`
	var args []any
	if minComments >= 0 {
		query += "\n\t\t\tHAVING COUNT(c.id) >= $1"
		args = append(args, minComments)
	}
	query += "\n\t\t) filtered"

	var total int64
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("comments.SummaryCount: %w", err)
	}
	return total, nil
}
