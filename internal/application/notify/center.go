// Package notify mantiene la cola de notificaciones (toasts) de cada sesión.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tunezone-api/internal/application/dto"
	"github.com/jhoicas/tunezone-api/internal/domain"
	"github.com/jhoicas/tunezone-api/internal/domain/entity"
	"github.com/jhoicas/tunezone-api/pkg/clock"
)

// MaxVisible cantidad máxima de notificaciones que se muestran a la vez.
const MaxVisible = 5

// maxQueued tope de la cola por sesión; las más antiguas se descartan.
const maxQueued = 50

// DefaultDuration duración usada cuando no se indica una.
const DefaultDuration = 5 * time.Second

type entry struct {
	n     entity.Notification
	timer clock.Timer
}

// Center cola de notificaciones por sesión con cierre automático.
type Center struct {
	mu              sync.Mutex
	clock           clock.Clock
	defaultDuration time.Duration
	queues          map[string][]*entry
}

// NewCenter construye el centro. defaultDuration ≤ 0 usa DefaultDuration.
func NewCenter(clk clock.Clock, defaultDuration time.Duration) *Center {
	if clk == nil {
		clk = clock.Real()
	}
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Center{clock: clk, defaultDuration: defaultDuration, queues: make(map[string][]*entry)}
}

// Push encola n para la sesión. Asigna ID y CreatedAt; Duration < 0 toma la duración por defecto
// y Duration = 0 deja la notificación persistente.
func (c *Center) Push(sessionID string, n entity.Notification) entity.Notification {
	n.ID = uuid.New().String()
	n.CreatedAt = c.clock.Now()
	if n.Duration < 0 {
		n.Duration = c.defaultDuration
	}

	e := &entry{n: n}
	c.mu.Lock()
	defer c.mu.Unlock()
	if n.Duration > 0 {
		id := n.ID
		e.timer = c.clock.AfterFunc(n.Duration, func() { c.expire(sessionID, id) })
	}
	q := append(c.queues[sessionID], e)
	if len(q) > maxQueued {
		for _, old := range q[:len(q)-maxQueued] {
			stop(old)
		}
		q = append([]*entry(nil), q[len(q)-maxQueued:]...)
	}
	c.queues[sessionID] = q
	return n
}

// Add valida la petición HTTP y encola la notificación.
func (c *Center) Add(sessionID string, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	typ := entity.NotificationType(in.Type)
	if !typ.IsValid() || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	n := entity.Notification{Type: typ, Title: in.Title, Message: in.Message, Duration: -1}
	if in.DurationMs != nil {
		if *in.DurationMs < 0 {
			return nil, domain.ErrInvalidInput
		}
		n.Duration = time.Duration(*in.DurationMs) * time.Millisecond
	}
	if in.ActionLabel != "" {
		n.Action = &entity.NotificationAction{Label: in.ActionLabel, Href: in.ActionHref}
	}
	out := toNotificationResponse(c.Push(sessionID, n))
	return &out, nil
}

// Success atajo para una notificación de éxito con la duración por defecto.
func (c *Center) Success(sessionID, title, message string) {
	c.Push(sessionID, entity.Notification{Type: entity.NotificationSuccess, Title: title, Message: message, Duration: -1})
}

// Warning atajo para una advertencia con la duración por defecto.
func (c *Center) Warning(sessionID, title, message string) {
	c.Push(sessionID, entity.Notification{Type: entity.NotificationWarning, Title: title, Message: message, Duration: -1})
}

// Error atajo para un error persistente.
func (c *Center) Error(sessionID, title, message string) {
	c.Push(sessionID, entity.Notification{Type: entity.NotificationError, Title: title, Message: message})
}

// List devuelve las visibles: más recientes primero, como máximo MaxVisible.
func (c *Center) List(sessionID string) []dto.NotificationResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.queues[sessionID]
	out := make([]dto.NotificationResponse, 0, MaxVisible)
	for i := len(q) - 1; i >= 0 && len(out) < MaxVisible; i-- {
		out = append(out, toNotificationResponse(q[i].n))
	}
	return out
}

// Dismiss cierra una notificación y detiene su temporizador.
func (c *Center) Dismiss(sessionID, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.remove(sessionID, id)
	if e == nil {
		return domain.ErrNotFound
	}
	stop(e)
	return nil
}

// Clear vacía la cola de la sesión (logout).
func (c *Center) Clear(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.queues[sessionID] {
		stop(e)
	}
	delete(c.queues, sessionID)
}

func (c *Center) expire(sessionID, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(sessionID, id)
}

// remove quita la entrada de la cola. Requiere c.mu tomado.
func (c *Center) remove(sessionID, id string) *entry {
	q := c.queues[sessionID]
	for i, e := range q {
		if e.n.ID != id {
			continue
		}
		q = append(q[:i:i], q[i+1:]...)
		if len(q) == 0 {
			delete(c.queues, sessionID)
		} else {
			c.queues[sessionID] = q
		}
		return e
	}
	return nil
}

func stop(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}
}

func toNotificationResponse(n entity.Notification) dto.NotificationResponse {
	out := dto.NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		DurationMs: n.Duration.Milliseconds(),
		Persistent: n.Persistent(),
		CreatedAt:  n.CreatedAt,
	}
	if n.Action != nil {
		out.Action = &dto.NotificationAction{Label: n.Action.Label, Href: n.Action.Href}
	}
	return out
}
