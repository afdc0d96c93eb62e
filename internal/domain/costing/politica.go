package costing

import "strings"

// Politica identifica la política de costeo configurada para el despliegue.
// Se lee una sola vez al inicio de sesión; este motor no la modifica.
type Politica string

const (
	// PoliticaPromedio promedia el valor de la existencia actual con el de
	// la entrada, proporcional a las cantidades.
	PoliticaPromedio Politica = "Promedio ponderado"
	// PoliticaFIFO valora la existencia restante con el costo de las capas
	// más antiguas aún no consumidas.
	PoliticaFIFO Politica = "Primero en entrar, primero en salir"
	// PoliticaNinguna desactiva la sugerencia de costo.
	PoliticaNinguna Politica = ""
)

// ParsePolitica normaliza el valor de configuración. Cualquier valor
// desconocido (incluido vacío) se trata como sin política.
func ParsePolitica(s string) Politica {
	switch Politica(strings.TrimSpace(s)) {
	case PoliticaPromedio:
		return PoliticaPromedio
	case PoliticaFIFO:
		return PoliticaFIFO
	}
	return PoliticaNinguna
}
