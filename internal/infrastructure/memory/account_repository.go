package memory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo credenciales mock indexadas por email (sin distinguir mayúsculas).
type AccountRepo struct {
	byEmail map[string]*entity.Account
}

// MockCredential credencial en texto plano usada solo para sembrar el repositorio.
type MockCredential struct {
	Email    string
	Name     string
	Role     entity.Role
	Password string
}

// NewAccountRepository hashea cada contraseña con bcrypt al construir.
func NewAccountRepository(creds []MockCredential, cost int) (*AccountRepo, error) {
	r := &AccountRepo{byEmail: make(map[string]*entity.Account, len(creds))}
	for _, c := range creds {
		if !c.Role.IsValid() || c.Role == entity.RoleGuest {
			return nil, fmt.Errorf("cuenta mock %s: rol inválido %q", c.Email, c.Role)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash cuenta mock %s: %w", c.Email, err)
		}
		r.byEmail[strings.ToLower(c.Email)] = &entity.Account{
			Email:        c.Email,
			Name:         c.Name,
			Role:         c.Role,
			PasswordHash: string(hash),
		}
	}
	return r, nil
}

// FindByEmail devuelve (nil, nil) si no existe.
func (r *AccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	a, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}
