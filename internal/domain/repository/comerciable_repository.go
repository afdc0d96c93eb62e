package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ComerciableRepository es el puerto de escritura de costos del comerciable.
type ComerciableRepository interface {
	// UpdateCosto actualiza costo_cup y costo_usd del comerciable en el
	// backend. Un 403 del backend se reporta como domain.ErrSesionExpirada
	// y no debe reintentarse.
	UpdateCosto(ctx context.Context, idComerciable string, costoCUP, costoUSD decimal.Decimal) error
}
