package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/domain/repository"
	"github.com/jhoicas/tunezone-api/pkg/clock"
	"github.com/jhoicas/tunezone-api/pkg/jwt"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

// Claves del storage. Se guardan con el prefijo "<sessionID>:".
const (
	KeyUser          = "tunezone_user"
	KeySessionExpiry = "tunezone_session_expiry"
)

// Datos del usuario invitado.
const (
	GuestEmail = "guest@tunezone.com"
	GuestName  = "Invitado"
)

// Config parámetros de sesión y firma de tokens.
type Config struct {
	Secret    string
	Issuer    string
	DealerTTL time.Duration
	AdminTTL  time.Duration
	GuestTTL  time.Duration
}

// TTL devuelve la duración de la sesión según el rol.
func (c Config) TTL(role entity.Role) time.Duration {
	switch role {
	case entity.RoleAdmin:
		return c.AdminTTL
	case entity.RoleGuest:
		return c.GuestTTL
	default:
		return c.DealerTTL
	}
}

// SessionCleaner estado efímero de la sesión que se descarta en logout (notificaciones, pagos pendientes).
type SessionCleaner interface {
	Clear(sessionID string)
}

// AuthUseCase login mock, invitado, restauración y logout.
type AuthUseCase struct {
	accounts repository.AccountRepository
	store    repository.KeyValueStore
	carts    repository.CartRepository
	cleaners []SessionCleaner
	clock    clock.Clock
	cfg      Config
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	accounts repository.AccountRepository,
	store repository.KeyValueStore,
	carts repository.CartRepository,
	clk clock.Clock,
	cfg Config,
	log *logger.Logger,
	cleaners ...SessionCleaner,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		accounts: accounts,
		store:    store,
		carts:    carts,
		cleaners: cleaners,
		clock:    clk,
		cfg:      cfg,
		log:      log.Named("auth"),
	}
}

// Login verifica email/password contra las credenciales mock y abre una sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	acc, err := uc.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.open(ctx, entity.User{Email: acc.Email, Name: acc.Name, Role: acc.Role})
}

// LoginGuest abre una sesión de invitado (más corta, sin precios mayoristas).
func (uc *AuthUseCase) LoginGuest(ctx context.Context, in dto.GuestLoginRequest) (*dto.LoginResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = GuestName
	}
	return uc.open(ctx, entity.User{Email: GuestEmail, Name: name, Role: entity.RoleGuest, IsGuest: true})
}

// Authenticate valida el token Bearer y restaura la sesión que referencia.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.ParseAt(uc.cfg.Secret, token, uc.clock.Now)
	if errors.Is(err, jwt.ErrExpired) {
		// Restore descarta las claves y el estado de la sesión vencida.
		if _, rerr := uc.Restore(ctx, claims.SessionID()); rerr != nil {
			return nil, rerr
		}
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.Restore(ctx, claims.SessionID())
}

// Restore lee la sesión del storage. Un error de lectura, claves faltantes, datos corruptos o una
// expiración vencida se tratan como "sin sesión": se limpian las claves y se devuelve ErrSessionNotFound.
func (uc *AuthUseCase) Restore(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrSessionNotFound
	}
	rawUser, okUser, err := uc.store.Get(ctx, storageKey(sessionID, KeyUser))
	if err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo leer la sesión del storage")
		return nil, domain.ErrSessionNotFound
	}
	rawExpiry, okExpiry, err := uc.store.Get(ctx, storageKey(sessionID, KeySessionExpiry))
	if err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo leer la expiración del storage")
		return nil, domain.ErrSessionNotFound
	}
	if !okUser && !okExpiry {
		return nil, domain.ErrSessionNotFound
	}

	sess, err := decodeSession(sessionID, rawUser, rawExpiry)
	if err != nil || !okUser || !okExpiry {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("sesión corrupta en storage, se descarta")
		uc.discard(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	if sess.Expired(uc.clock.Now()) {
		uc.log.Info().Str("session_id", sessionID).Str("role", string(sess.User.Role)).Msg("sesión expirada")
		uc.discard(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Me devuelve el estado de la sesión con el tiempo restante.
func (uc *AuthUseCase) Me(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	sess, err := uc.Restore(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	remaining := sess.ExpiresAt.Sub(uc.clock.Now())
	return &dto.SessionResponse{
		User:             ToUserResponse(sess.User),
		ExpiresAt:        sess.ExpiresAt,
		RemainingSeconds: int64(remaining / time.Second),
	}, nil
}

// Logout borra las claves del storage, el carrito y las notificaciones de la sesión.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrSessionNotFound
	}
	if err := uc.store.Delete(ctx, storageKey(sessionID, KeyUser), storageKey(sessionID, KeySessionExpiry)); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	uc.cleanup(ctx, sessionID)
	return nil
}

func (uc *AuthUseCase) open(ctx context.Context, user entity.User) (*dto.LoginResponse, error) {
	ttl := uc.cfg.TTL(user.Role)
	if ttl <= 0 {
		return nil, fmt.Errorf("auth: ttl inválido para el rol %s", user.Role)
	}
	// exp del JWT tiene resolución de segundos; la sesión guardada debe vencer a la vez.
	sess := &entity.Session{
		ID:        uuid.New().String(),
		User:      user,
		ExpiresAt: uc.clock.Now().Add(ttl).Truncate(time.Second),
	}
	rawUser, err := json.Marshal(sess.User)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Set(ctx, storageKey(sess.ID, KeyUser), string(rawUser)); err != nil {
		return nil, fmt.Errorf("guardar usuario: %w", err)
	}
	expiry := strconv.FormatInt(sess.ExpiresAt.UnixMilli(), 10)
	if err := uc.store.Set(ctx, storageKey(sess.ID, KeySessionExpiry), expiry); err != nil {
		return nil, fmt.Errorf("guardar expiración: %w", err)
	}

	token, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, sess.ID, user.Email, string(user.Role), user.IsGuest, sess.ExpiresAt)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("session_id", sess.ID).Str("role", string(user.Role)).Time("expires_at", sess.ExpiresAt).Msg("sesión iniciada")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
		User:      ToUserResponse(user),
	}, nil
}

func (uc *AuthUseCase) discard(ctx context.Context, sessionID string) {
	if err := uc.store.Delete(ctx, storageKey(sessionID, KeyUser), storageKey(sessionID, KeySessionExpiry)); err != nil {
		uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudieron borrar las claves de sesión")
	}
	uc.cleanup(ctx, sessionID)
}

func (uc *AuthUseCase) cleanup(ctx context.Context, sessionID string) {
	if uc.carts != nil {
		if err := uc.carts.Delete(ctx, sessionID); err != nil {
			uc.log.Warn().Err(err).Str("session_id", sessionID).Msg("no se pudo vaciar el carrito")
		}
	}
	for _, c := range uc.cleaners {
		c.Clear(sessionID)
	}
}

var errMalformed = errors.New("sesión mal formada")

func decodeSession(sessionID, rawUser, rawExpiry string) (*entity.Session, error) {
	var user entity.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if user.Email == "" || !user.Role.IsValid() {
		return nil, errMalformed
	}
	ms, err := strconv.ParseInt(strings.TrimSpace(rawExpiry), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	// El rol invitado y la bandera deben coincidir.
	user.IsGuest = user.Role == entity.RoleGuest
	return &entity.Session{ID: sessionID, User: user, ExpiresAt: time.UnixMilli(ms)}, nil
}

func storageKey(sessionID, key string) string {
	return sessionID + ":" + key
}

// ToUserResponse mapea el usuario de sesión al DTO.
func ToUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		IsGuest: u.IsGuest,
	}
}
