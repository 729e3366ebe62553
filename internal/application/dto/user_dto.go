package dto

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
// Role es opcional; vacío → "user".
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,max=50"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT (1 hora de vigencia por defecto).
type LoginResponse struct {
	Token string `json:"token"`
}
