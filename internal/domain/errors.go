package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrSesionExpirada = errors.New("sesión expirada")
	ErrCancelado      = errors.New("operación cancelada por el usuario")
	// ErrBackend marca fallos reportados por el backend REST; el adaptador
	// HTTP lo envuelve con el mensaje original del servidor.
	ErrBackend = errors.New("error del backend")
	// ErrEntradaNoRegistrada señala la inconsistencia parcial conocida:
	// el costo del comerciable quedó actualizado pero la entrada no se creó.
	ErrEntradaNoRegistrada = errors.New("costo actualizado pero la entrada no fue registrada")
)
