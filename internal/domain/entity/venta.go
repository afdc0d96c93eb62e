package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta registra una salida de mercancía por venta. Para el motor de costeo
// es solo lectura: el consumo FIFO la aplica contra las capas históricas.
type Venta struct {
	ID             string
	IDComerciable  string
	Cantidad       decimal.Decimal
	Fecha          time.Time
	PrecioCobrado  decimal.Decimal
	PrecioOriginal decimal.Decimal
	MetodoPago     string
}
