package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

var _ repository.PostRepository = (*PostRepo)(nil)

// PostRepo implementación del puerto PostRepository sobre PostgreSQL.
type PostRepo struct {
	q Querier
}

// NewPostRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPostRepository(q Querier) *PostRepo {
	return &PostRepo{q: q}
}

// Create persiste un nuevo post.
func (r *PostRepo) Create(post *entity.Post) error {
	query := `
		INSERT INTO posts (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		post.ID, post.UserID, post.Title, post.Content, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// GetByID obtiene un post por ID; nil si no existe.
func (r *PostRepo) GetByID(id string) (*entity.Post, error) {
	query := `SELECT id, user_id, title, content, created_at, updated_at FROM posts WHERE id = $1`
	var p entity.Post
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

// GetWithAuthor obtiene un post con los campos públicos del autor; nil si no existe.
func (r *PostRepo) GetWithAuthor(id string) (*repository.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.content, p.created_at, p.updated_at, u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`
	var out repository.PostWithAuthor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&out.Post.ID, &out.Post.UserID, &out.Post.Title, &out.Post.Content,
		&out.Post.CreatedAt, &out.Post.UpdatedAt, &out.AuthorName, &out.AuthorEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get post with author: %w", err)
	}
	return &out, nil
}

// Update actualiza título y contenido de un post.
func (r *PostRepo) Update(post *entity.Post) error {
	query := `UPDATE posts SET title = $2, content = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		post.ID, post.Title, post.Content, post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un post por ID. Retorna ErrNotFound si no existía.
func (r *PostRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista posts con autor, ordenados por creación ascendente.
// userID vacío lista todos; no vacío filtra por autor.
func (r *PostRepo) List(userID string) ([]repository.PostWithAuthor, error) {
	query := `
		SELECT p.id, p.user_id, p.title, p.content, p.created_at, p.updated_at, u.name, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id`
	var args []any
	if userID != "" {
		query += "\n\t\tWHERE p.user_id = $1"
		args = append(args, userID)
	}
	query += "\n\t\tORDER BY p.created_at ASC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()
	var list []repository.PostWithAuthor
	for rows.Next() {
		var item repository.PostWithAuthor
		if err := rows.Scan(&item.Post.ID, &item.Post.UserID, &item.Post.Title, &item.Post.Content,
			&item.Post.CreatedAt, &item.Post.UpdatedAt, &item.AuthorName, &item.AuthorEmail); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}
