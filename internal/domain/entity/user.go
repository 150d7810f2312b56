package entity

import "time"

// Role es el rol del usuario en la tienda.
type Role string

// Roles válidos.
const (
	RoleDealer Role = "dealer"
	RoleGuest  Role = "guest"
	RoleAdmin  Role = "admin"
)

// IsValid informa si el rol es conocido.
func (r Role) IsValid() bool {
	switch r {
	case RoleDealer, RoleGuest, RoleAdmin:
		return true
	default:
		return false
	}
}

// SeesWholesale informa si el rol puede ver precios mayoristas.
func (r Role) SeesWholesale() bool {
	return r == RoleDealer || r == RoleAdmin
}

// User es el usuario de la sesión. Se serializa tal cual en el storage (clave tunezone_user).
type User struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Role    Role   `json:"role"`
	IsGuest bool   `json:"isGuest"`
}

// Account es una credencial mock (distribuidor o administrador) con su hash bcrypt.
type Account struct {
	Email        string
	Name         string
	Role         Role
	PasswordHash string
}

// Session une al usuario con su expiración.
type Session struct {
	ID        string
	User      User
	ExpiresAt time.Time
}

// Expired informa si la sesión venció en el instante now (vencida si expiresAt ≤ now).
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
