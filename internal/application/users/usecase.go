package users

import (
	"fmt"

	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// UseCase aplica reglas de negocio para usuarios: listados con posts,
// actualización y borrado (solo admin) y consulta de saldos de puntos.
type UseCase struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewUseCase construye el caso de uso con los puertos de persistencia.
func NewUseCase(userRepo repository.UserRepository, postRepo repository.PostRepository) *UseCase {
	return &UseCase{userRepo: userRepo, postRepo: postRepo}
}

// List lista usuarios con sus posts. Los posts se cargan en una sola
// consulta y se agrupan por autor en memoria.
func (uc *UseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando usuarios: %w", err)
	}
	posts, err := uc.postRepo.List("")
	if err != nil {
		return nil, fmt.Errorf("listando posts: %w", err)
	}
	byAuthor := make(map[string][]dto.PostResponse)
	for _, p := range posts {
		byAuthor[p.Post.UserID] = append(byAuthor[p.Post.UserID], toPostResponse(&p.Post))
	}

	data := make([]dto.UserWithPostsResponse, 0, len(users))
	for _, u := range users {
		item := dto.UserWithPostsResponse{UserResponse: *toUserResponse(u)}
		item.Posts = byAuthor[u.ID]
		if item.Posts == nil {
			item.Posts = []dto.PostResponse{}
		}
		data = append(data, item)
	}
	return &dto.UserListResponse{Message: "Users list", Data: data}, nil
}

// GetByID obtiene un usuario con sus posts; nil si no existe.
func (uc *UseCase) GetByID(id string) (*dto.UserWithPostsResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	posts, err := uc.postRepo.List(id)
	if err != nil {
		return nil, fmt.Errorf("listando posts del usuario: %w", err)
	}
	resp := &dto.UserWithPostsResponse{UserResponse: *toUserResponse(user), Posts: []dto.PostResponse{}}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, toPostResponse(&p.Post))
	}
	return resp, nil
}

// Update actualiza nombre, email o rol de un usuario. La ruta restringe la
// operación a administradores.
func (uc *UseCase) Update(id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if req.Email != nil && *req.Email != user.Email {
		existing, err := uc.userRepo.GetByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("actualizando usuario: %w", err)
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Los posts, comentarios y pedidos asociados caen
// en cascada a nivel de base de datos.
func (uc *UseCase) Delete(id string) error {
	return uc.userRepo.Delete(id)
}

// ListPoints lista los saldos de puntos de todos los usuarios.
func (uc *UseCase) ListPoints(limit, offset int) ([]dto.UserPointsResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listando saldos: %w", err)
	}
	data := make([]dto.UserPointsResponse, 0, len(users))
	for _, u := range users {
		data = append(data, dto.UserPointsResponse{ID: u.ID, Name: u.Name, Email: u.Email, Points: u.Points})
	}
	return data, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Points:    u.Points,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
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
