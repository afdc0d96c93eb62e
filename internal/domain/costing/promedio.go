package costing

import "github.com/shopspring/decimal"

// CostoPromedio implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Con denominador cero (sin existencia y sin entrada) conserva el último costo
// conocido: el de la entrada si es positivo, si no el actual, si no cero.
func CostoPromedio(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	denom := stockActual.Add(cantEntrada)
	if denom.GreaterThan(decimal.Zero) {
		num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
		return num.Div(denom)
	}
	if costoEntrada.GreaterThan(decimal.Zero) {
		return costoEntrada
	}
	if costoActual.GreaterThan(decimal.Zero) {
		return costoActual
	}
	return decimal.Zero
}
