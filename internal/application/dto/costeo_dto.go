package dto

import "github.com/shopspring/decimal"

// ComerciableDTO instantánea del comerciable tal como la tiene la app móvil
// en pantalla. Es la forma normalizada única: el resto del sistema no vuelve
// a adivinar nombres de campo.
type ComerciableDTO struct {
	ID        string          `json:"id_comerciable" validate:"required"`
	Nombre    string          `json:"nombre"`
	Cantidad  decimal.Decimal `json:"cant"`
	CostoCUP  decimal.Decimal `json:"costo_cup"`
	CostoUSD  decimal.Decimal `json:"costo_usd"`
	PrecioCUP decimal.Decimal `json:"precio_cup"`
	PrecioUSD decimal.Decimal `json:"precio_usd"`
}

// SugerenciaRequest datos de la entrada en evaluación.
type SugerenciaRequest struct {
	Comerciable     ComerciableDTO  `json:"comerciable" validate:"required"`
	Cantidad        decimal.Decimal `json:"cantidad"`
	CostoCUP        decimal.Decimal `json:"costo_cup"`
	CostoUSD        decimal.Decimal `json:"costo_usd"`
	NombreProveedor string          `json:"nombre_proveedor"`
	Fecha           string          `json:"fecha" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"` // ISO 8601; vacía = ahora
}

// RegistrarEntradaRequest agrega la decisión del usuario sobre la sugerencia.
type RegistrarEntradaRequest struct {
	SugerenciaRequest
	AplicarSugerencia bool `json:"aplicar_sugerencia"`
}

// SugerenciaResponse costo sugerido frente al registrado, con 5 decimales
// exactos en su forma textual.
type SugerenciaResponse struct {
	Politica  string `json:"politica"`
	CostoCUP  string `json:"costo_cup"`
	CostoUSD  string `json:"costo_usd"`
	ActualCUP string `json:"actual_cup"`
	ActualUSD string `json:"actual_usd"`
}

// RegistrarEntradaResponse confirma el registro.
type RegistrarEntradaResponse struct {
	Mensaje       string              `json:"mensaje"`
	CostoAplicado bool                `json:"costo_aplicado"`
	Sugerencia    *SugerenciaResponse `json:"sugerencia,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
