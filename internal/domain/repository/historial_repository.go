package repository

import (
	"context"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// HistorialRepository es el puerto de lectura del historial de movimientos de
// un comerciable en el backend. Las dos lecturas son independientes entre sí
// y pueden ejecutarse de forma concurrente.
// El error de red o de backend se devuelve tal cual: la decisión de degradar
// a historial vacío pertenece a la capa de aplicación, no al adaptador.
type HistorialRepository interface {
	// ListEntradas devuelve las entradas del comerciable, sin ordenar.
	ListEntradas(ctx context.Context, idComerciable string) ([]entity.Entrada, error)
	// ListVentas devuelve las ventas del comerciable, sin ordenar.
	ListVentas(ctx context.Context, idComerciable string) ([]entity.Venta, error)
}
