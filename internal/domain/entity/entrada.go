package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada registra la llegada de mercancía: cantidad recibida y costo
// unitario en ambas monedas al momento de la recepción. Inmutable una vez
// creada; este sistema nunca la borra.
// Las entradas legadas (anteriores al costeo por entrada) pueden venir sin
// costo propio; en ese caso el historial les asigna el costo actual del
// comerciable. Fecha cero significa "sin fecha": ordena como la más antigua.
type Entrada struct {
	ID              string
	IDComerciable   string
	NombreProveedor string
	Cantidad        decimal.Decimal
	CostoCUP        decimal.Decimal
	CostoUSD        decimal.Decimal
	Fecha           time.Time
}
