package costing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// Capa es la unidad contable FIFO derivada de una entrada histórica:
// cantidad restante y costo unitario original de recepción. Existe solo en
// memoria durante un cálculo y se descarta al terminar.
type Capa struct {
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
	Fecha         time.Time
}

// Agotada indica que la capa ya no tiene cantidad disponible. Las capas
// agotadas se saltan durante el consumo y no participan en la agregación.
func (c Capa) Agotada() bool {
	return c.Cantidad.LessThanOrEqual(decimal.Zero)
}

// CapasDesdeEntradas crea una capa por entrada histórica, conservando el
// orden recibido (el historial ya viene ordenado cronológicamente).
func CapasDesdeEntradas(entradas []entity.Entrada) []Capa {
	capas := make([]Capa, 0, len(entradas))
	for _, e := range entradas {
		capas = append(capas, Capa{
			Cantidad:      e.Cantidad,
			CostoUnitario: e.CostoCUP,
			Fecha:         e.Fecha,
		})
	}
	return capas
}

// ConsumirVentas aplica cada venta en orden cronológico contra las capas en
// orden FIFO: de cada capa con cantidad restante se descuenta
// min(capa, pendiente) hasta agotar la venta o las capas. Una capa agotada
// por una venta anterior se salta y no se vuelve a visitar.
// Trabaja sobre una copia; las capas recibidas no se modifican.
func ConsumirVentas(capas []Capa, ventas []entity.Venta) []Capa {
	restantes := make([]Capa, len(capas))
	copy(restantes, capas)

	for _, v := range ventas {
		pendiente := v.Cantidad
		for i := range restantes {
			if pendiente.LessThanOrEqual(decimal.Zero) {
				break
			}
			if restantes[i].Agotada() {
				continue
			}
			usado := decimal.Min(restantes[i].Cantidad, pendiente)
			restantes[i].Cantidad = restantes[i].Cantidad.Sub(usado)
			pendiente = pendiente.Sub(usado)
		}
	}
	return restantes
}

// CostoFIFO calcula el costo unitario tras la entrada entrante: consume las
// ventas históricas contra las capas, agrega la capa entrante (si trae
// cantidad) y promedia las capas con cantidad restante.
// La entrada entrante llega después de todo el consumo histórico, por lo que
// nunca es consumida por ventas anteriores. Sin cantidad restante el costo
// es cero.
func CostoFIFO(capas []Capa, ventas []entity.Venta, cantEntrante, costoEntrante decimal.Decimal) decimal.Decimal {
	restantes := ConsumirVentas(capas, ventas)
	if cantEntrante.GreaterThan(decimal.Zero) {
		restantes = append(restantes, Capa{Cantidad: cantEntrante, CostoUnitario: costoEntrante})
	}

	totalCant := decimal.Zero
	totalCosto := decimal.Zero
	for _, c := range restantes {
		if c.Agotada() {
			continue
		}
		totalCant = totalCant.Add(c.Cantidad)
		totalCosto = totalCosto.Add(c.Cantidad.Mul(c.CostoUnitario))
	}
	if totalCant.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return totalCosto.Div(totalCant)
}
