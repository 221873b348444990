package handler

// updateUserRequest is a full replacement of the profile fields. Role and
// password are not updatable through this route.
type updateUserRequest struct {
	Name    string `json:"nombre" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"direccion"`
}
