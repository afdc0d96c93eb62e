package backendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// crearEntradaDTO cuerpo de POST /entrada/CreateEntrada.
type crearEntradaDTO struct {
	IDUsuario       string      `json:"id_usuario"`
	IDComerciable   string      `json:"id_comerciable"`
	NombreProveedor string      `json:"nombre_proveedor"`
	Fecha           string      `json:"fecha"`
	Cantidad        json.Number `json:"cantidad"`
	CostoCUP        json.Number `json:"costo_cup"`
	CostoUSD        json.Number `json:"costo_usd"`
}

// Create implementa repository.EntradaRepository. La fecha cero se envía
// como el momento actual en UTC.
func (c *Client) Create(ctx context.Context, e entity.Entrada, idUsuario string) error {
	fecha := e.Fecha
	if fecha.IsZero() {
		fecha = time.Now().UTC()
	}
	body := crearEntradaDTO{
		IDUsuario:       idUsuario,
		IDComerciable:   e.IDComerciable,
		NombreProveedor: e.NombreProveedor,
		Fecha:           fecha.Format(time.RFC3339),
		Cantidad:        json.Number(e.Cantidad.String()),
		CostoCUP:        json.Number(e.CostoCUP.String()),
		CostoUSD:        json.Number(e.CostoUSD.String()),
	}
	if err := c.doJSON(ctx, http.MethodPost, "/entrada/CreateEntrada", body, nil); err != nil {
		return fmt.Errorf("crear entrada: %w", err)
	}
	return nil
}
