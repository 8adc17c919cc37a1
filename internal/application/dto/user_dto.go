package dto

import "time"

// RegisterRequest entrada para registro: name, email, password.
// La longitud mínima de password es 5 (compatibilidad con clientes existentes).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

// LoginRequest entrada para login (email + password).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Points    int64     `json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse salida de register/login: token JWT + usuario.
type AuthResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	User   UserResponse `json:"user"`
}

// SupplierLoginResponse salida del login de proveedor.
type SupplierLoginResponse struct {
	Status   string           `json:"status"`
	Message  string           `json:"message"`
	Token    string           `json:"token"`
	Supplier SupplierResponse `json:"supplier"`
}

// SupplierResponse datos públicos del proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest entrada para actualizar un usuario (solo admin).
// Role solo puede cambiarlo un admin; la ruta ya lo garantiza.
type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,oneof=admin user supplier"`
}

// UserWithPostsResponse usuario con sus posts (listado del blog).
type UserWithPostsResponse struct {
	UserResponse
	Posts []PostResponse `json:"posts"`
}

// UserListResponse lista de usuarios con posts.
type UserListResponse struct {
	Message string                  `json:"message"`
	Data    []UserWithPostsResponse `json:"data"`
}

// UserPointsResponse saldo de puntos de un usuario (listado de transferencias).
type UserPointsResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int64  `json:"points"`
}
