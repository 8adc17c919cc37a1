package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mercado-api/internal/application/blog"
	"github.com/jhoicas/Mercado-api/internal/domain"
	"github.com/jhoicas/Mercado-api/internal/domain/entity"
	"github.com/jhoicas/Mercado-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Mercado-api/internal/interfaces/http"
)

// emptyPostRepo simula una tabla de posts vacía.
type emptyPostRepo struct{}

func (emptyPostRepo) Create(*entity.Post) error            { return nil }
func (emptyPostRepo) GetByID(string) (*entity.Post, error) { return nil, nil }
func (emptyPostRepo) Update(*entity.Post) error            { return nil }
func (emptyPostRepo) Delete(string) error                  { return domain.ErrNotFound }
func (emptyPostRepo) List(string) ([]repository.PostWithAuthor, error) {
	return nil, nil
}
func (emptyPostRepo) GetWithAuthor(string) (*repository.PostWithAuthor, error) {
	return nil, nil
}

func TestDeletePost_InexistenteDevuelve404(t *testing.T) {
	app := fiber.New()
	handler := apphttp.NewPostHandler(blog.NewPostUseCase(emptyPostRepo{}, nil))
	app.Delete("/api/v1/posts/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin),
		handler.Delete,
	)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/10000000-0000-0000-0000-000000000001", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"borrar un post inexistente debe ser 404, nunca 500")
}

func TestDeletePost_SinRolAdminDevuelve403(t *testing.T) {
	app := fiber.New()
	handler := apphttp.NewPostHandler(blog.NewPostUseCase(emptyPostRepo{}, nil))
	app.Delete("/api/v1/posts/:id",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin),
		handler.Delete,
	)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/10000000-0000-0000-0000-000000000001", nil)
	req.Header.Set("Authorization", tokenForRole(t, "user"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
