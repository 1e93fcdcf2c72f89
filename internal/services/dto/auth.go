package dto

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required" validate:"required,phone"`
	Password string `json:"password" binding:"required" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=100"`
}

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type AuthUser struct {
	ID        string `json:"id"`
	Phone     string `json:"phone"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}
