package costing

import "github.com/shopspring/decimal"

// Precision de los costos calculados. Es mayor que la precisión de pantalla
// (2 decimales) porque el promedio repetido acumula error de redondeo.
const Precision = 5

// Resultado es el costo unitario calculado en ambas monedas, ya redondeado a
// Precision decimales. Transitorio: solo se persiste en el comerciable si el
// usuario acepta la sugerencia.
type Resultado struct {
	CostoCUP decimal.Decimal
	CostoUSD decimal.Decimal
}

// NuevoResultado redondea el costo CUP y deriva el costo USD con la tasa de
// cambio (CUP por USD). Tasa ausente o no positiva: el USD queda en cero y
// la derivación se omite.
func NuevoResultado(costoCUP, tasaCambio decimal.Decimal) Resultado {
	r := Resultado{CostoCUP: costoCUP.Round(Precision), CostoUSD: decimal.Zero}
	if tasaCambio.GreaterThan(decimal.Zero) {
		r.CostoUSD = costoCUP.Div(tasaCambio).Round(Precision)
	}
	return r
}

// CUPFixed devuelve el costo CUP con exactamente 5 decimales.
func (r Resultado) CUPFixed() string { return r.CostoCUP.StringFixed(Precision) }

// USDFixed devuelve el costo USD con exactamente 5 decimales.
func (r Resultado) USDFixed() string { return r.CostoUSD.StringFixed(Precision) }
