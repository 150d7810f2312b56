package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
	ErrSessionNotFound    = errors.New("sesión inexistente o expirada")
	ErrOutOfStock         = errors.New("producto sin stock")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrPaymentExpired     = errors.New("el tiempo de pago expiró")
	ErrPaymentClosed      = errors.New("el pago ya no está pendiente")
)
