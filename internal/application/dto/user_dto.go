package dto

import "time"

// LoginRequest entrada para login de distribuidor o administrador.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GuestLoginRequest entrada para "continuar como invitado". Name es opcional.
type GuestLoginRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

// UserResponse usuario de la sesión.
type UserResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role"`
	IsGuest bool   `json:"is_guest"`
}

// LoginResponse token Bearer + usuario + expiración de la sesión.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// SessionResponse estado de la sesión actual (GET /api/auth/me).
type SessionResponse struct {
	User             UserResponse `json:"user"`
	ExpiresAt        time.Time    `json:"expires_at"`
	RemainingSeconds int64        `json:"remaining_seconds"`
}
