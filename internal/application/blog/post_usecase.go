package blog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// PostUseCase aplica reglas de negocio para posts del blog.
type PostUseCase struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// NewPostUseCase construye el caso de uso con los puertos de persistencia.
func NewPostUseCase(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *PostUseCase {
	return &PostUseCase{postRepo: postRepo, commentRepo: commentRepo}
}

// List lista posts con autor y comentarios, orden de creación ascendente.
// userID vacío lista todos; no vacío filtra por autor.
func (uc *PostUseCase) List(userID string) (*dto.PostListResponse, error) {
	posts, err := uc.postRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("listando posts: %w", err)
	}
	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.Post.ID)
	}
	comments, err := uc.commentRepo.ListByPostIDs(postIDs)
	if err != nil {
		return nil, fmt.Errorf("listando comentarios: %w", err)
	}

	data := make([]dto.PostDetailResponse, 0, len(posts))
	for _, p := range posts {
		data = append(data, toPostDetail(&p, comments[p.Post.ID]))
	}
	return &dto.PostListResponse{Message: "Posts list", Data: data}, nil
}

// GetByID obtiene un post con autor y comentarios; nil si no existe.
func (uc *PostUseCase) GetByID(id string) (*dto.PostDetailResponse, error) {
	post, err := uc.postRepo.GetWithAuthor(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, nil
	}
	comments, err := uc.commentRepo.ListByPostIDs([]string{id})
	if err != nil {
		return nil, fmt.Errorf("listando comentarios: %w", err)
	}
	detail := toPostDetail(post, comments[id])
	return &detail, nil
}

// Create crea un post cuyo autor es el principal autenticado.
func (uc *PostUseCase) Create(userID string, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	now := time.Now().UTC()
	post := &entity.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("creando post: %w", err)
	}
	resp := toPostResponse(post)
	return &resp, nil
}

// Update actualiza un post. Solo el autor o un admin pueden hacerlo.
func (uc *PostUseCase) Update(id, principalID, principalRole string, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	post, err := uc.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrNotFound
	}
	if post.UserID != principalID && principalRole != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	post.UpdatedAt = time.Now().UTC()
	if err := uc.postRepo.Update(post); err != nil {
		return nil, fmt.Errorf("actualizando post: %w", err)
	}
	resp := toPostResponse(post)
	return &resp, nil
}

// Delete elimina un post. La ruta restringe la operación a administradores.
// Devuelve ErrNotFound si el post no existe.
func (uc *PostUseCase) Delete(id string) error {
	return uc.postRepo.Delete(id)
}

func toPostDetail(p *repository.PostWithAuthor, comments []repository.CommentWithAuthor) dto.PostDetailResponse {
	detail := dto.PostDetailResponse{
		PostResponse: toPostResponse(&p.Post),
		User:         dto.AuthorResponse{ID: p.Post.UserID, Name: p.AuthorName, Email: p.AuthorEmail},
		Comments:     []dto.CommentResponse{},
	}
	for _, c := range comments {
		detail.Comments = append(detail.Comments, toCommentResponse(&c))
	}
	return detail
}

func toPostResponse(p *entity.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCommentResponse(c *repository.CommentWithAuthor) dto.CommentResponse {
	return dto.CommentResponse{
		ID:      c.Comment.ID,
		PostID:  c.Comment.PostID,
		Content: c.Comment.Content,
		User: dto.AuthorResponse{
			ID:    c.Comment.UserID,
			Name:  c.AuthorName,
			Email: c.AuthorEmail,
		},
		CreatedAt: c.Comment.CreatedAt,
	}
}
