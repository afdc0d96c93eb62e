package costing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/costing"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func capa(cant, costo string) costing.Capa {
	return costing.Capa{Cantidad: d(cant), CostoUnitario: d(costo)}
}

func venta(cant string) entity.Venta {
	return entity.Venta{Cantidad: d(cant), Fecha: time.Now()}
}

func totalRestante(capas []costing.Capa) decimal.Decimal {
	total := decimal.Zero
	for _, c := range capas {
		if !c.Agotada() {
			total = total.Add(c.Cantidad)
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Consumo FIFO
// ──────────────────────────────────────────────────────────────────────────────

// La primera venta drena la capa más antigua sin importar su costo unitario:
// [{5,A},{5,B}] tras una venta de 3 debe quedar [{2,A},{5,B}].
func TestConsumirVentas_DrenaLaCapaMasAntiguaPrimero(t *testing.T) {
	capas := []costing.Capa{capa("5", "100"), capa("5", "1")}

	restantes := costing.ConsumirVentas(capas, []entity.Venta{venta("3")})

	require.Len(t, restantes, 2)
	assert.True(t, d("2").Equal(restantes[0].Cantidad),
		"la capa más antigua debe quedar con 2, quedó con %s", restantes[0].Cantidad)
	assert.True(t, d("5").Equal(restantes[1].Cantidad),
		"la capa más reciente no debe tocarse antes de agotar la anterior")
}

// Una capa agotada por una venta anterior se salta por completo.
func TestConsumirVentas_SaltaCapasAgotadas(t *testing.T) {
	capas := []costing.Capa{capa("3", "1"), capa("4", "2")}

	restantes := costing.ConsumirVentas(capas, []entity.Venta{venta("3"), venta("2")})

	assert.True(t, restantes[0].Agotada(), "la primera capa debe quedar agotada")
	assert.True(t, d("2").Equal(restantes[1].Cantidad),
		"la segunda venta debe consumir solo de la segunda capa")
}

// Conservación: restante + vendido == suministrado, para cualquier secuencia
// con ventas totales ≤ suministro total.
func TestConsumirVentas_ConservacionDeCantidades(t *testing.T) {
	casos := []struct {
		nombre string
		capas  []costing.Capa
		ventas []entity.Venta
	}{
		{"una capa una venta", []costing.Capa{capa("10", "2")}, []entity.Venta{venta("4")}},
		{"venta cruza capas", []costing.Capa{capa("5", "1"), capa("5", "3")}, []entity.Venta{venta("7")}},
		{"varias ventas pequeñas", []costing.Capa{capa("3", "1"), capa("3", "2"), capa("3", "3")}, []entity.Venta{venta("1"), venta("2"), venta("3")}},
		{"ventas agotan todo", []costing.Capa{capa("2", "1"), capa("2", "2")}, []entity.Venta{venta("4")}},
		{"sin ventas", []costing.Capa{capa("6", "1")}, nil},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			suministrado := totalRestante(c.capas)
			vendido := decimal.Zero
			for _, v := range c.ventas {
				vendido = vendido.Add(v.Cantidad)
			}

			restantes := costing.ConsumirVentas(c.capas, c.ventas)

			assert.True(t, suministrado.Equal(totalRestante(restantes).Add(vendido)),
				"restante (%s) + vendido (%s) debe igualar lo suministrado (%s)",
				totalRestante(restantes), vendido, suministrado)
		})
	}
}

// Las capas originales nunca se mutan: el consumo trabaja sobre una copia.
func TestConsumirVentas_NoMutaLasCapasOriginales(t *testing.T) {
	capas := []costing.Capa{capa("5", "1"), capa("5", "3")}

	_ = costing.ConsumirVentas(capas, []entity.Venta{venta("8")})

	assert.True(t, d("5").Equal(capas[0].Cantidad), "la capa original no debe mutarse")
	assert.True(t, d("5").Equal(capas[1].Cantidad), "la capa original no debe mutarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo FIFO
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: entradas [{5,1},{5,3}] en orden cronológico,
// venta de 3, entra {2,5}. Tras consumir 3 de la primera capa quedan
// [{2,1},{5,3},{2,5}]: 9 unidades con costo total 27, promedio 3.00000.
func TestCostoFIFO_EscenarioReferencia(t *testing.T) {
	capas := []costing.Capa{capa("5", "1"), capa("5", "3")}
	ventas := []entity.Venta{venta("3")}

	nuevo := costing.CostoFIFO(capas, ventas, d("2"), d("5"))

	assert.Equal(t, "3.00000", nuevo.StringFixed(5))
}

// La entrada en evaluación llega después de todo el consumo histórico: las
// ventas nunca la tocan aunque agoten todas las capas previas.
func TestCostoFIFO_LaEntranteNoSeConsume(t *testing.T) {
	capas := []costing.Capa{capa("2", "1")}
	ventas := []entity.Venta{venta("5")} // excede lo histórico

	nuevo := costing.CostoFIFO(capas, ventas, d("4"), d("10"))

	assert.Equal(t, "10.00000", nuevo.StringFixed(5),
		"solo la capa entrante debe quedar viva, a su propio costo")
}

// Con cantidad entrante cero no se agrega capa nueva.
func TestCostoFIFO_EntranteSinCantidad(t *testing.T) {
	capas := []costing.Capa{capa("4", "2")}

	nuevo := costing.CostoFIFO(capas, nil, decimal.Zero, d("99"))

	assert.Equal(t, "2.00000", nuevo.StringFixed(5))
}

// Sin cantidad restante en ninguna capa el costo es cero.
func TestCostoFIFO_SinCantidadRestante(t *testing.T) {
	capas := []costing.Capa{capa("3", "7")}
	ventas := []entity.Venta{venta("3")}

	nuevo := costing.CostoFIFO(capas, ventas, decimal.Zero, decimal.Zero)

	assert.True(t, nuevo.IsZero(), "sin capas vivas el costo debe ser cero")
}

// Sin historial (backend caído o comerciable nuevo) la entrante es la única
// capa y fija el costo por sí sola.
func TestCostoFIFO_SinHistorial(t *testing.T) {
	nuevo := costing.CostoFIFO(nil, nil, d("7"), d("2.5"))
	assert.Equal(t, "2.50000", nuevo.StringFixed(5))
}

func TestCapasDesdeEntradas_ConservaOrdenYCosto(t *testing.T) {
	f1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f2 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	entradas := []entity.Entrada{
		{Cantidad: d("5"), CostoCUP: d("1"), Fecha: f1},
		{Cantidad: d("3"), CostoCUP: d("2"), Fecha: f2},
	}

	capas := costing.CapasDesdeEntradas(entradas)

	require.Len(t, capas, 2)
	assert.True(t, d("1").Equal(capas[0].CostoUnitario))
	assert.Equal(t, f1, capas[0].Fecha)
	assert.True(t, d("2").Equal(capas[1].CostoUnitario))
}
