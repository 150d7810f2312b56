package notify_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/application/notify"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/pkg/clock"
)

func newCenter() (*notify.Center, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	return notify.NewCenter(clk, 0), clk
}

func ms(v int) *int { return &v }

func TestCenter_DuracionCeroEsPersistente(t *testing.T) {
	c, clk := newCenter()
	out, err := c.Add("s1", dto.CreateNotificationRequest{Type: "info", Title: "Hola", DurationMs: ms(0)})
	require.NoError(t, err)
	assert.True(t, out.Persistent)

	clk.Advance(24 * time.Hour)
	assert.Len(t, c.List("s1"), 1)
	assert.Zero(t, clk.Pending())
}

func TestCenter_SeCierraAlCumplirLaDuracion(t *testing.T) {
	c, clk := newCenter()
	_, err := c.Add("s1", dto.CreateNotificationRequest{Type: "success", Title: "Listo", DurationMs: ms(1000)})
	require.NoError(t, err)

	clk.Advance(999 * time.Millisecond)
	assert.Len(t, c.List("s1"), 1, "no antes de 1000ms")
	clk.Advance(time.Millisecond)
	assert.Empty(t, c.List("s1"))
}

func TestCenter_DuracionPorDefecto(t *testing.T) {
	c, clk := newCenter()
	out, err := c.Add("s1", dto.CreateNotificationRequest{Type: "warning", Title: "Ojo"})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), out.DurationMs)

	clk.Advance(notify.DefaultDuration)
	assert.Empty(t, c.List("s1"))
}

func TestCenter_ListaMaximoCincoMasRecientesPrimero(t *testing.T) {
	c, _ := newCenter()
	for i := 0; i < 7; i++ {
		c.Push("s1", entity.Notification{Type: entity.NotificationInfo, Title: fmt.Sprintf("n%d", i)})
	}
	list := c.List("s1")
	require.Len(t, list, notify.MaxVisible)
	assert.Equal(t, "n6", list[0].Title)
	assert.Equal(t, "n2", list[4].Title)

	require.NoError(t, c.Dismiss("s1", list[0].ID))
	list = c.List("s1")
	assert.Equal(t, "n5", list[0].Title)
	assert.Equal(t, "n1", list[4].Title, "al cerrar una se muestra la siguiente en espera")
}

func TestCenter_DismissDetieneTemporizador(t *testing.T) {
	c, clk := newCenter()
	out, err := c.Add("s1", dto.CreateNotificationRequest{Type: "error", Title: "Falla", DurationMs: ms(2000)})
	require.NoError(t, err)
	require.Equal(t, 1, clk.Pending())

	require.NoError(t, c.Dismiss("s1", out.ID))
	assert.Zero(t, clk.Pending())
	assert.ErrorIs(t, c.Dismiss("s1", out.ID), domain.ErrNotFound)
}

func TestCenter_ClearAisladoPorSesion(t *testing.T) {
	c, clk := newCenter()
	c.Warning("s1", "a", "")
	c.Warning("s2", "b", "")

	c.Clear("s1")
	assert.Empty(t, c.List("s1"))
	assert.Len(t, c.List("s2"), 1)
	assert.Equal(t, 1, clk.Pending())
}

func TestCenter_AccionYValidacion(t *testing.T) {
	c, _ := newCenter()
	out, err := c.Add("s1", dto.CreateNotificationRequest{Type: "info", Title: "Pedido", ActionLabel: "Ver", ActionHref: "/orders"})
	require.NoError(t, err)
	require.NotNil(t, out.Action)
	assert.Equal(t, "/orders", out.Action.Href)

	_, err = c.Add("s1", dto.CreateNotificationRequest{Type: "fatal", Title: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = c.Add("s1", dto.CreateNotificationRequest{Type: "info", Title: "x", DurationMs: ms(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
