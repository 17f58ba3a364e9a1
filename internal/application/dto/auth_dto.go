package dto

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT firmado.
type LoginResponse struct {
	Token string `json:"token"`
}
