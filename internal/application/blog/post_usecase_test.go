package blog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/application/dto"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

const (
	authorID = "00000000-0000-0000-0000-000000000001"
	otherID  = "00000000-0000-0000-0000-000000000002"
	postID   = "10000000-0000-0000-0000-000000000001"
)

type fakePostRepo struct {
	repository.PostRepository
	posts   map[string]*entity.Post
	updated *entity.Post
}

func (r *fakePostRepo) GetByID(id string) (*entity.Post, error) {
	if p := r.posts[id]; p != nil {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakePostRepo) Update(post *entity.Post) error {
	r.updated = post
	return nil
}

func (r *fakePostRepo) Delete(id string) error {
	if r.posts[id] == nil {
		return domain.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

type fakeCommentRepo struct {
	repository.CommentRepository
}

func newPostUseCase() (*blog.PostUseCase, *fakePostRepo) {
	repo := &fakePostRepo{posts: map[string]*entity.Post{
		postID: {ID: postID, UserID: authorID, Title: "Original", Content: "..."},
	}}
	return blog.NewPostUseCase(repo, &fakeCommentRepo{}), repo
}

func strPtr(s string) *string { return &s }

func TestPostUpdate_AutorPuedeEditar(t *testing.T) {
	uc, repo := newPostUseCase()

	out, err := uc.Update(postID, authorID, entity.RoleUser, &dto.UpdatePostRequest{Title: strPtr("Nuevo título")})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo título", out.Title)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "Nuevo título", repo.updated.Title)
}

func TestPostUpdate_AdminPuedeEditarPostAjeno(t *testing.T) {
	uc, _ := newPostUseCase()

	_, err := uc.Update(postID, otherID, entity.RoleAdmin, &dto.UpdatePostRequest{Title: strPtr("Editado")})
	assert.NoError(t, err, "un admin puede editar cualquier post")
}

func TestPostUpdate_OtroUsuarioProhibido(t *testing.T) {
	uc, repo := newPostUseCase()

	_, err := uc.Update(postID, otherID, entity.RoleUser, &dto.UpdatePostRequest{Title: strPtr("Hackeado")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Nil(t, repo.updated, "no debe persistirse ningún cambio")
}

func TestPostUpdate_PostInexistente(t *testing.T) {
	uc, _ := newPostUseCase()

	_, err := uc.Update("20000000-0000-0000-0000-000000000009", authorID, entity.RoleAdmin,
		&dto.UpdatePostRequest{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostDelete_InexistenteDevuelveNotFound(t *testing.T) {
	uc, _ := newPostUseCase()

	err := uc.Delete("20000000-0000-0000-0000-000000000009")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
