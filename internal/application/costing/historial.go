package costing

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/repository"
	"github.com/davidquintanajob/vdoctor-costing/pkg/logger"
)

// Historial es el historial normalizado de un comerciable: entradas y ventas
// ordenadas ascendentemente por fecha. Una fecha cero ordena primero (las
// entradas legadas sin fecha cuentan como las más antiguas).
type Historial struct {
	Entradas []entity.Entrada
	Ventas   []entity.Venta
}

// HistorialService carga y normaliza el historial desde el backend.
// Solo lectura, sin efectos.
type HistorialService struct {
	repo repository.HistorialRepository
	log  *logger.Logger
}

// NewHistorialService construye el servicio.
func NewHistorialService(repo repository.HistorialRepository, log *logger.Logger) *HistorialService {
	return &HistorialService{repo: repo, log: log}
}

// Cargar obtiene entradas y ventas en paralelo (son lecturas independientes),
// ordena ambas por fecha y completa el costo de las entradas legadas (sin
// costo propio) con el costo actual del comerciable.
// Si el backend falla o no responde, degrada a historial vacío: para el
// motor de costos es "sin capas previas", no un error. La decisión queda
// registrada en el log para distinguirla de un historial realmente vacío.
func (s *HistorialService) Cargar(ctx context.Context, com entity.Comerciable) Historial {
	var (
		entradas []entity.Entrada
		ventas   []entity.Venta
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entradas, err = s.repo.ListEntradas(gctx, com.ID)
		return err
	})
	g.Go(func() error {
		var err error
		ventas, err = s.repo.ListVentas(gctx, com.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn().Err(err).
			Str("id_comerciable", com.ID).
			Msg("historial no disponible, se continúa sin capas previas")
		return Historial{}
	}

	for i := range entradas {
		if entradas[i].CostoCUP.IsZero() {
			// entrada legada, anterior al costeo por entrada
			entradas[i].CostoCUP = com.CostoCUP
		}
	}
	sort.SliceStable(entradas, func(i, j int) bool {
		return entradas[i].Fecha.Before(entradas[j].Fecha)
	})
	sort.SliceStable(ventas, func(i, j int) bool {
		return ventas[i].Fecha.Before(ventas[j].Fecha)
	})
	return Historial{Entradas: entradas, Ventas: ventas}
}
