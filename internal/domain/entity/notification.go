package entity

import "time"

// NotificationType tipo visual del toast.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// IsValid informa si el tipo es conocido.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationSuccess, NotificationError, NotificationWarning, NotificationInfo:
		return true
	default:
		return false
	}
}

// NotificationAction botón opcional del toast.
type NotificationAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Notification mensaje efímero. Duration 0 = persistente (solo cierre manual).
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Duration  time.Duration
	Action    *NotificationAction
	CreatedAt time.Time
}

// Persistent informa si la notificación no se cierra sola.
func (n *Notification) Persistent() bool { return n.Duration == 0 }
