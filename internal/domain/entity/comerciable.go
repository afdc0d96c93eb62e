package entity

import "github.com/shopspring/decimal"

// Comerciable representa un producto, medicamento o insumo vendible de la
// clínica, con existencia y costo/precio en doble moneda (CUP y USD).
// El backend es el dueño del registro; el motor de costeo solo lee cantidad
// y costos y, si el usuario acepta la sugerencia, escribe los costos nuevos.
type Comerciable struct {
	ID        string
	Nombre    string
	Cantidad  decimal.Decimal // existencia actual
	CostoCUP  decimal.Decimal // costo unitario en moneda local
	CostoUSD  decimal.Decimal // costo unitario en moneda de referencia
	PrecioCUP decimal.Decimal
	PrecioUSD decimal.Decimal
}
