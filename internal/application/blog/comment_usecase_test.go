package blog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
)

// fakeSummaryRepo devuelve un resumen ya filtrado/ordenado, como lo haría la
// consulta SQL, y registra los argumentos recibidos.
type fakeSummaryRepo struct {
	repository.CommentRepository
	rows []repository.PostCommentCount

	gotMin    int64
	gotLimit  int
	gotOffset int
}

func (r *fakeSummaryRepo) Summary(_ context.Context, minComments int64, limit, offset int) ([]repository.PostCommentCount, error) {
	r.gotMin, r.gotLimit, r.gotOffset = minComments, limit, offset
	if offset >= len(r.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.rows) {
		end = len(r.rows)
	}
	return r.rows[offset:end], nil
}

func (r *fakeSummaryRepo) SummaryCount(context.Context, int64) (int64, error) {
	return int64(len(r.rows)), nil
}

type stubPostRepo struct {
	repository.PostRepository
	exists bool
}

func (r *stubPostRepo) GetByID(id string) (*entity.Post, error) {
	if !r.exists {
		return nil, nil
	}
	return &entity.Post{ID: id}, nil
}

func TestCommentSummary_PaginaDespuesDeFiltrar(t *testing.T) {
	repo := &fakeSummaryRepo{rows: []repository.PostCommentCount{
		{PostID: "p1", PostTitle: "A", CommentsCount: 5},
		{PostID: "p2", PostTitle: "B", CommentsCount: 3},
		{PostID: "p3", PostTitle: "C", CommentsCount: 2},
	}}
	uc := blog.NewCommentUseCase(&stubPostRepo{}, repo)

	out, err := uc.Summary(context.Background(), 2, 2, 2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), repo.gotMin, "el filtro debe llegar a la consulta")
	assert.Equal(t, 2, repo.gotLimit)
	assert.Equal(t, 2, repo.gotOffset, "page=2 con limit=2 es offset=2")

	require.Len(t, out.Data, 1)
	assert.Equal(t, "p3", out.Data[0].PostID)
	assert.Equal(t, int64(3), out.Pagination.Total)
	assert.Equal(t, int64(2), out.Pagination.Pages, "3 filas con limit 2 son 2 páginas")
}

func TestCommentSummary_DefaultsDePaginacion(t *testing.T) {
	repo := &fakeSummaryRepo{}
	uc := blog.NewCommentUseCase(&stubPostRepo{}, repo)

	_, err := uc.Summary(context.Background(), -1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)
}

func TestListByPost_PostInexistente(t *testing.T) {
	uc := blog.NewCommentUseCase(&stubPostRepo{exists: false}, &fakeSummaryRepo{})

	_, err := uc.ListByPost("20000000-0000-0000-0000-000000000009", 1, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
