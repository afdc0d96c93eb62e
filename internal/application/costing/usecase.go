package costing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/costing"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/repository"
	"github.com/davidquintanajob/vdoctor-costing/pkg/logger"
)

// Estado del flujo de registro de una entrada. Se recorre en orden estricto;
// abortado y confirmado son terminales para el envío en curso.
type Estado string

const (
	EstadoIdle                    Estado = "idle"
	EstadoCalculando              Estado = "calculando"
	EstadoEsperandoConfirmacion   Estado = "esperando_confirmacion"
	EstadoActualizandoComerciable Estado = "actualizando_comerciable"
	EstadoCreandoEntrada          Estado = "creando_entrada"
	EstadoConfirmado              Estado = "confirmado"
	EstadoAbortado                Estado = "abortado"
)

// EntradaInput son los datos del formulario de entrada tal como los tecleó
// el usuario, junto con la instantánea del comerciable que la app tiene en
// pantalla. La entrada creada registra siempre estos valores, nunca la
// sugerencia.
type EntradaInput struct {
	Comerciable     entity.Comerciable
	Cantidad        decimal.Decimal
	CostoCUP        decimal.Decimal
	CostoUSD        decimal.Decimal
	NombreProveedor string
	Fecha           time.Time
}

// Validar rechaza el envío antes de cualquier llamada de red: comerciable
// sin seleccionar, cantidad no positiva o costos negativos.
func (in EntradaInput) Validar() error {
	if in.Comerciable.ID == "" {
		return fmt.Errorf("%w: comerciable sin seleccionar", domain.ErrInvalidInput)
	}
	if !in.Cantidad.GreaterThan(decimal.Zero) {
		return fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.CostoCUP.LessThan(decimal.Zero) || in.CostoUSD.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// Sugerencia es el costo calculado frente al costo registrado actualmente,
// tal como se presenta al usuario para que decida.
type Sugerencia struct {
	Politica costing.Politica
	Sugerido costing.Resultado
	Actual   costing.Resultado
}

// Confirmador es el puerto hacia la capa de presentación: decide si el costo
// sugerido se aplica al comerciable antes de registrar la entrada.
// aplicar=true actualiza el costo con la sugerencia; aplicar=false conserva
// el costo actual. Un error que envuelva domain.ErrCancelado cancela el
// envío sin escrituras.
type Confirmador interface {
	Confirmar(ctx context.Context, s Sugerencia) (aplicar bool, err error)
}

// ConfirmadorFijo adapta una decisión ya tomada (por ejemplo un campo del
// request HTTP) al puerto Confirmador.
type ConfirmadorFijo bool

func (c ConfirmadorFijo) Confirmar(context.Context, Sugerencia) (bool, error) {
	return bool(c), nil
}

// ConfirmadorFunc adapta una función al puerto Confirmador.
type ConfirmadorFunc func(ctx context.Context, s Sugerencia) (bool, error)

func (f ConfirmadorFunc) Confirmar(ctx context.Context, s Sugerencia) (bool, error) {
	return f(ctx, s)
}

// Resumen es el resultado de un registro confirmado.
type Resumen struct {
	Entrada       entity.Entrada
	Sugerencia    *Sugerencia
	CostoAplicado bool
}

// RegistrarEntradaUseCase orquesta el flujo completo de una entrada:
// calcular la sugerencia de costo según la política configurada, pedir
// confirmación y ejecutar las dos escrituras dependientes en orden estricto.
// La configuración (política, tasa de cambio, usuario) se inyecta en la
// construcción y no cambia durante la sesión.
type RegistrarEntradaUseCase struct {
	politica     costing.Politica
	tasaCambio   decimal.Decimal
	idUsuario    string
	historial    *HistorialService
	comerciables repository.ComerciableRepository
	entradas     repository.EntradaRepository
	log          *logger.Logger

	// OnCommit, si no es nil, se notifica con la entrada creada tras un
	// registro confirmado.
	OnCommit func(entity.Entrada)
}

// NewRegistrarEntradaUseCase construye el caso de uso.
func NewRegistrarEntradaUseCase(
	politica costing.Politica,
	tasaCambio decimal.Decimal,
	idUsuario string,
	historial *HistorialService,
	comerciables repository.ComerciableRepository,
	entradas repository.EntradaRepository,
	log *logger.Logger,
) *RegistrarEntradaUseCase {
	return &RegistrarEntradaUseCase{
		politica:     politica,
		tasaCambio:   tasaCambio,
		idUsuario:    idUsuario,
		historial:    historial,
		comerciables: comerciables,
		entradas:     entradas,
		log:          log,
	}
}

// Sugerir calcula el costo sugerido para la entrada según la política
// configurada. Con política ninguna no hay sugerencia y devuelve nil.
func (uc *RegistrarEntradaUseCase) Sugerir(ctx context.Context, in EntradaInput) (*Sugerencia, error) {
	if err := in.Validar(); err != nil {
		return nil, err
	}
	return uc.sugerir(ctx, in), nil
}

// sugerir asume input ya validado.
func (uc *RegistrarEntradaUseCase) sugerir(ctx context.Context, in EntradaInput) *Sugerencia {
	var nuevoCosto decimal.Decimal
	switch uc.politica {
	case costing.PoliticaPromedio:
		nuevoCosto = costing.CostoPromedio(
			in.Comerciable.Cantidad, in.Comerciable.CostoCUP,
			in.Cantidad, in.CostoCUP,
		)
	case costing.PoliticaFIFO:
		h := uc.historial.Cargar(ctx, in.Comerciable)
		capas := costing.CapasDesdeEntradas(h.Entradas)
		nuevoCosto = costing.CostoFIFO(capas, h.Ventas, in.Cantidad, in.CostoCUP)
	default:
		return nil
	}
	return &Sugerencia{
		Politica: uc.politica,
		Sugerido: costing.NuevoResultado(nuevoCosto, uc.tasaCambio),
		Actual: costing.Resultado{
			CostoCUP: in.Comerciable.CostoCUP.Round(costing.Precision),
			CostoUSD: in.Comerciable.CostoUSD.Round(costing.Precision),
		},
	}
}

// Registrar ejecuta el flujo completo. Invariante: la actualización de costo
// del comerciable, cuando ocurre, precede estrictamente a la creación de la
// entrada y las dos escrituras no son atómicas. Si la primera falla se
// aborta sin crear la entrada; si la segunda falla tras una primera exitosa
// el costo queda actualizado sin entrada correspondiente y se reporta con
// domain.ErrEntradaNoRegistrada (sin escritura compensatoria).
func (uc *RegistrarEntradaUseCase) Registrar(ctx context.Context, in EntradaInput, conf Confirmador) (*Resumen, error) {
	estado := EstadoIdle
	if err := in.Validar(); err != nil {
		return nil, err
	}

	idEnvio := uuid.New().String()
	log := uc.log.With().
		Str("id_envio", idEnvio).
		Str("id_comerciable", in.Comerciable.ID).
		Logger()
	avanzar := func(e Estado) {
		estado = e
		log.Debug().Str("estado", string(e)).Msg("registro de entrada")
	}

	avanzar(EstadoCalculando)
	sug := uc.sugerir(ctx, in)

	aplicar := false
	if sug != nil {
		avanzar(EstadoEsperandoConfirmacion)
		var err error
		aplicar, err = conf.Confirmar(ctx, *sug)
		if err != nil {
			// cancelación cooperativa: ninguna escritura comenzó, el
			// formulario vuelve a idle con los datos del usuario intactos
			log.Info().Str("estado", string(estado)).Msg("envío cancelado antes de escribir")
			return nil, fmt.Errorf("confirmar sugerencia: %w", err)
		}
	}

	if aplicar {
		avanzar(EstadoActualizandoComerciable)
		err := uc.comerciables.UpdateCosto(ctx, in.Comerciable.ID, sug.Sugerido.CostoCUP, sug.Sugerido.CostoUSD)
		if err != nil {
			estado = EstadoAbortado
			log.Error().Err(err).Str("estado", string(estado)).
				Msg("no se pudo actualizar el costo; la entrada no se crea")
			return nil, fmt.Errorf("actualizar costo del comerciable: %w", err)
		}
	}

	avanzar(EstadoCreandoEntrada)
	ent := entity.Entrada{
		IDComerciable:   in.Comerciable.ID,
		NombreProveedor: in.NombreProveedor,
		Cantidad:        in.Cantidad,
		CostoCUP:        in.CostoCUP,
		CostoUSD:        in.CostoUSD,
		Fecha:           in.Fecha,
	}
	if err := uc.entradas.Create(ctx, ent, uc.idUsuario); err != nil {
		estado = EstadoAbortado
		if aplicar {
			// inconsistencia parcial conocida: costo actualizado sin
			// entrada; se reporta distinto de un fallo total
			log.Error().Err(err).Str("estado", string(estado)).
				Str("costo_cup", sug.Sugerido.CUPFixed()).
				Msg("costo actualizado pero la entrada no se registró")
			return nil, fmt.Errorf("%w: %v", domain.ErrEntradaNoRegistrada, err)
		}
		log.Error().Err(err).Str("estado", string(estado)).Msg("no se pudo crear la entrada")
		return nil, fmt.Errorf("crear entrada: %w", err)
	}

	avanzar(EstadoConfirmado)
	if uc.OnCommit != nil {
		uc.OnCommit(ent)
	}
	return &Resumen{Entrada: ent, Sugerencia: sug, CostoAplicado: aplicar}, nil
}

// EsCancelacion distingue una cancelación del usuario de un fallo real.
func EsCancelacion(err error) bool {
	return errors.Is(err, domain.ErrCancelado)
}
