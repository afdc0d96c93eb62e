package repository

import (
	"context"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// EntradaRepository es el puerto de creación de entradas en el backend.
type EntradaRepository interface {
	// Create registra la entrada con los valores tecleados por el usuario;
	// la actualización de costo del comerciable, si la hubo, nunca altera
	// el costo propio de la entrada.
	Create(ctx context.Context, e entity.Entrada, idUsuario string) error
}
