package handler

import "github.com/markobarraza/cafe-marketplace/internal/core/domain"

// Request field names keep the wire contract of the original API, so existing
// clients keep working against this rewrite.

type registerRequest struct {
	Name     string `json:"nombre"     validate:"required"`
	Email    string `json:"email"      validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=4"`
	Address  string `json:"direccion"`
	Role     string `json:"rol"        validate:"required,oneof=comprador vendedor admin"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"usuario"`
}

type loginRequest struct {
	Email    string `json:"email"      validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}
