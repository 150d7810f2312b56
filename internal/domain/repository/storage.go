package repository

import "context"

// KeyValueStore equivalente del "local storage" del navegador: claves y valores string.
type KeyValueStore interface {
	// Get devuelve ok=false si la clave no existe.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
