package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tunezone-api/internal/application/auth"
	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/application/notify"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/memory"
	"github.com/jhoicas/tunezone-api/internal/infrastructure/storage"
	"github.com/jhoicas/tunezone-api/pkg/clock"
	"github.com/jhoicas/tunezone-api/pkg/jwt"
	"github.com/jhoicas/tunezone-api/pkg/logger"
)

var testCfg = auth.Config{
	Secret:    "test-secret",
	Issuer:    "tunezone-test",
	DealerTTL: 24 * time.Hour,
	AdminTTL:  8 * time.Hour,
	GuestTTL:  2 * time.Hour,
}

type fixture struct {
	uc     *auth.AuthUseCase
	clock  *clock.Fake
	store  *storage.MemoryStore
	carts  *memory.CartRepo
	center *notify.Center
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	accounts, err := memory.NewAccountRepository(memory.SeedCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	clk := clock.NewFake(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC))
	f := fixture{
		clock:  clk,
		store:  storage.NewMemoryStore(),
		carts:  memory.NewCartRepository(),
		center: notify.NewCenter(clk, 0),
	}
	f.uc = auth.NewAuthUseCase(accounts, f.store, f.carts, clk, testCfg, logger.Nop(), f.center)
	return f
}

func TestLogin_Distribuidor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "dealer@tunezone.com", Password: "dealer123"})
	require.NoError(t, err)
	assert.Equal(t, "dealer", out.User.Role)
	assert.False(t, out.User.IsGuest)
	assert.Equal(t, f.clock.Now().Add(24*time.Hour), out.ExpiresAt)

	claims, err := jwt.ParseAt(testCfg.Secret, out.Token, f.clock.Now)
	require.NoError(t, err)
	assert.Equal(t, "dealer", claims.Role)
	assert.Equal(t, out.ExpiresAt.Unix(), claims.ExpiresAt.Unix(), "el token vence con la sesión")

	sess, err := f.uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, claims.SessionID(), sess.ID)
	assert.Equal(t, entity.RoleDealer, sess.User.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Login(ctx, dto.LoginRequest{Email: "dealer@tunezone.com", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = f.uc.Login(ctx, dto.LoginRequest{Email: "nadie@tunezone.com", Password: "dealer123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginGuest_SesionMasCorta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	guest, err := f.uc.LoginGuest(ctx, dto.GuestLoginRequest{})
	require.NoError(t, err)
	dealer, err := f.uc.Login(ctx, dto.LoginRequest{Email: "dealer@tunezone.com", Password: "dealer123"})
	require.NoError(t, err)

	assert.True(t, guest.User.IsGuest)
	assert.Equal(t, "guest", guest.User.Role)
	assert.Equal(t, auth.GuestName, guest.User.Name)
	assert.True(t, guest.ExpiresAt.Before(dealer.ExpiresAt))
}

func TestRestore_SesionVencidaEsAusente(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.LoginGuest(ctx, dto.GuestLoginRequest{Name: "Ana"})
	require.NoError(t, err)
	claims, err := jwt.ParseAt(testCfg.Secret, out.Token, f.clock.Now)
	require.NoError(t, err)
	id := claims.SessionID()

	f.clock.Advance(2*time.Hour - time.Second)
	_, err = f.uc.Restore(ctx, id)
	require.NoError(t, err)

	f.clock.Advance(time.Second)
	_, err = f.uc.Restore(ctx, id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "expiración igual a ahora cuenta como vencida")

	_, ok, _ := f.store.Get(ctx, id+":"+auth.KeyUser)
	assert.False(t, ok, "las claves se limpian")
}

func TestRestore_DatosCorruptos(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, "s1:"+auth.KeyUser, "{no es json"))
	require.NoError(t, f.store.Set(ctx, "s1:"+auth.KeySessionExpiry, "9999999999999"))
	_, err := f.uc.Restore(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, f.store.Set(ctx, "s2:"+auth.KeyUser, `{"email":"a@b.c","role":"dealer"}`))
	require.NoError(t, f.store.Set(ctx, "s2:"+auth.KeySessionExpiry, "mañana"))
	_, err = f.uc.Restore(ctx, "s2")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	require.NoError(t, f.store.Set(ctx, "s3:"+auth.KeyUser, `{"email":"a@b.c","role":"dealer"}`))
	_, err = f.uc.Restore(ctx, "s3")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound, "falta la expiración")
}

type failingStore struct{ storage.MemoryStore }

func (*failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disco no disponible")
}

func TestRestore_ErrorDeLecturaEsAusente(t *testing.T) {
	accounts, err := memory.NewAccountRepository(memory.SeedCredentials(), bcrypt.MinCost)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(accounts, &failingStore{}, nil, clock.NewFake(time.Now()), testCfg, nil)

	_, err = uc.Restore(context.Background(), "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestLogout_LimpiaCarritoYNotificaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "admin@tunezone.com", Password: "admin123"})
	require.NoError(t, err)
	sess, err := f.uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)

	require.NoError(t, f.carts.Save(ctx, &entity.Cart{SessionID: sess.ID, Items: []entity.CartItem{{ID: "gtr-001", Quantity: 1}}}))
	f.center.Warning(sess.ID, "Stock bajo", "")

	require.NoError(t, f.uc.Logout(ctx, sess.ID))

	cart, err := f.carts.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Empty(t, f.center.List(sess.ID))
	assert.Zero(t, f.clock.Pending())

	_, err = f.uc.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMe_TiempoRestante(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "admin@tunezone.com", Password: "admin123"})
	require.NoError(t, err)
	sess, err := f.uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	me, err := f.uc.Me(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7*3600), me.RemainingSeconds)
	assert.Equal(t, "admin", me.User.Role)
}

func TestAuthenticate_TokenInvalido(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Authenticate(context.Background(), "no.es.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_TokenVencidoLimpiaSesion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Login(ctx, dto.LoginRequest{Email: "dealer@tunezone.com", Password: "dealer123"})
	require.NoError(t, err)
	sess, err := f.uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	f.center.Error(sess.ID, "Pago rechazado", "")

	f.clock.Advance(25 * time.Hour)
	_, err = f.uc.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, ok, _ := f.store.Get(ctx, sess.ID+":"+auth.KeyUser)
	assert.False(t, ok, "las claves se limpian")
	assert.Empty(t, f.center.List(sess.ID))
}

func TestAuthenticate_InstanteConFraccionDeSegundo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.clock.Advance(900 * time.Millisecond)

	out, err := f.uc.LoginGuest(ctx, dto.GuestLoginRequest{})
	require.NoError(t, err)
	assert.Zero(t, out.ExpiresAt.Nanosecond(), "la sesión vence en un segundo exacto, igual que el token")

	f.clock.Advance(out.ExpiresAt.Sub(f.clock.Now()) - 500*time.Millisecond)
	sess, err := f.uc.Authenticate(ctx, out.Token)
	require.NoError(t, err, "sesión y token siguen vigentes")
	_, err = f.uc.Restore(ctx, sess.ID)
	require.NoError(t, err)

	f.clock.Advance(500 * time.Millisecond)
	_, err = f.uc.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = f.uc.Restore(ctx, sess.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
