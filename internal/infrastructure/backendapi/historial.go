package backendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// entradaDTO forma del backend para GET /entrada/comerciable/{id}.
// costo_cup y costo_usd pueden faltar en entradas legadas.
type entradaDTO struct {
	ID              string           `json:"id"`
	Cantidad        decimal.Decimal  `json:"cantidad"`
	CostoCUP        *decimal.Decimal `json:"costo_cup"`
	CostoUSD        *decimal.Decimal `json:"costo_usd"`
	NombreProveedor string           `json:"nombre_proveedor"`
	Fecha           string           `json:"fecha"`
}

// ventaDTO forma del backend para GET /venta/comerciable/{id}.
type ventaDTO struct {
	ID             string           `json:"id"`
	Cantidad       decimal.Decimal  `json:"cantidad"`
	Fecha          string           `json:"fecha"`
	PrecioCobrado  *decimal.Decimal `json:"precio"`
	PrecioOriginal *decimal.Decimal `json:"precio_original"`
	MetodoPago     string           `json:"metodo_pago"`
}

// ListEntradas implementa repository.HistorialRepository.
func (c *Client) ListEntradas(ctx context.Context, idComerciable string) ([]entity.Entrada, error) {
	var dtos []entradaDTO
	path := "/entrada/comerciable/" + url.PathEscape(idComerciable)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("listar entradas: %w", err)
	}

	entradas := make([]entity.Entrada, 0, len(dtos))
	for _, d := range dtos {
		e := entity.Entrada{
			ID:              d.ID,
			IDComerciable:   idComerciable,
			NombreProveedor: d.NombreProveedor,
			Cantidad:        d.Cantidad,
			Fecha:           parseFecha(d.Fecha),
		}
		if d.CostoCUP != nil {
			e.CostoCUP = *d.CostoCUP
		}
		if d.CostoUSD != nil {
			e.CostoUSD = *d.CostoUSD
		}
		entradas = append(entradas, e)
	}
	return entradas, nil
}

// ListVentas implementa repository.HistorialRepository.
func (c *Client) ListVentas(ctx context.Context, idComerciable string) ([]entity.Venta, error) {
	var dtos []ventaDTO
	path := "/venta/comerciable/" + url.PathEscape(idComerciable)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}

	ventas := make([]entity.Venta, 0, len(dtos))
	for _, d := range dtos {
		v := entity.Venta{
			ID:            d.ID,
			IDComerciable: idComerciable,
			Cantidad:      d.Cantidad,
			Fecha:         parseFecha(d.Fecha),
			MetodoPago:    d.MetodoPago,
		}
		if d.PrecioCobrado != nil {
			v.PrecioCobrado = *d.PrecioCobrado
		}
		if d.PrecioOriginal != nil {
			v.PrecioOriginal = *d.PrecioOriginal
		}
		ventas = append(ventas, v)
	}
	return ventas, nil
}
