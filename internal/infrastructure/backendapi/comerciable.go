package backendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// actualizarCostoDTO cuerpo de PUT /producto/UpdateProducto/{id}.
// json.Number para que el backend reciba números, no cadenas.
type actualizarCostoDTO struct {
	CostoUSD json.Number `json:"costo_usd"`
	CostoCUP json.Number `json:"costo_cup"`
}

// UpdateCosto implementa repository.ComerciableRepository.
func (c *Client) UpdateCosto(ctx context.Context, idComerciable string, costoCUP, costoUSD decimal.Decimal) error {
	body := actualizarCostoDTO{
		CostoUSD: json.Number(costoUSD.String()),
		CostoCUP: json.Number(costoCUP.String()),
	}
	path := "/producto/UpdateProducto/" + url.PathEscape(idComerciable)
	if err := c.doJSON(ctx, http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("actualizar costo: %w", err)
	}
	return nil
}
