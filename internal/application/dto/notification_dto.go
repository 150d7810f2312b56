package dto

import "time"

// CreateNotificationRequest publica un toast. DurationMs nil = duración por defecto; 0 = persistente.
type CreateNotificationRequest struct {
	Type        string `json:"type" validate:"required,oneof=success error warning info"`
	Title       string `json:"title" validate:"required,max=120"`
	Message     string `json:"message" validate:"max=500"`
	DurationMs  *int   `json:"duration_ms" validate:"omitempty,min=0,max=600000"`
	ActionLabel string `json:"action_label" validate:"omitempty,max=60"`
	ActionHref  string `json:"action_href" validate:"required_with=ActionLabel,max=300"`
}

// NotificationResponse toast visible.
type NotificationResponse struct {
	ID         string              `json:"id"`
	Type       string              `json:"type"`
	Title      string              `json:"title"`
	Message    string              `json:"message"`
	DurationMs int64               `json:"duration_ms"`
	Persistent bool                `json:"persistent"`
	Action     *NotificationAction `json:"action,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NotificationAction botón opcional del toast.
type NotificationAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}
