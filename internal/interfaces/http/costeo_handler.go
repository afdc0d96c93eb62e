package http

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	appcosting "github.com/davidquintanajob/vdoctor-costing/internal/application/costing"
	"github.com/davidquintanajob/vdoctor-costing/internal/application/dto"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain"
	"github.com/davidquintanajob/vdoctor-costing/internal/domain/entity"
)

// CosteoHandler maneja las peticiones HTTP del flujo de costeo de entradas.
type CosteoHandler struct {
	uc       *appcosting.RegistrarEntradaUseCase
	validate *validator.Validate
}

// NewCosteoHandler construye el handler.
func NewCosteoHandler(uc *appcosting.RegistrarEntradaUseCase) *CosteoHandler {
	return &CosteoHandler{uc: uc, validate: validator.New()}
}

// Sugerencia godoc
// @Summary      Calcular el costo sugerido para una entrada
// @Tags         costeo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SugerenciaRequest  true  "comerciable + cantidad y costos de la entrada"
// @Success      200   {object}  dto.SugerenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/costeo/sugerencia [post]
func (h *CosteoHandler) Sugerencia(c *fiber.Ctx) error {
	var req dto.SugerenciaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: err.Error()})
	}

	in, err := toEntradaInput(req)
	if err != nil {
		return respuestaError(c, err)
	}
	sug, err := h.uc.Sugerir(c.Context(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	if sug == nil {
		// sin política de costeo: no hay sugerencia que confirmar
		return c.JSON(dto.SugerenciaResponse{Politica: "ninguna"})
	}
	return c.JSON(toSugerenciaResponse(sug))
}

// RegistrarEntrada godoc
// @Summary      Registrar una entrada, aplicando o no el costo sugerido
// @Tags         costeo
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarEntradaRequest  true  "entrada + aplicar_sugerencia"
// @Success      201   {object}  dto.RegistrarEntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/costeo/entradas [post]
func (h *CosteoHandler) RegistrarEntrada(c *fiber.Ctx) error {
	var req dto.RegistrarEntradaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CUERPO_INVALIDO", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: err.Error()})
	}

	in, err := toEntradaInput(req.SugerenciaRequest)
	if err != nil {
		return respuestaError(c, err)
	}
	resumen, err := h.uc.Registrar(c.Context(), in, appcosting.ConfirmadorFijo(req.AplicarSugerencia))
	if err != nil {
		return respuestaError(c, err)
	}

	resp := dto.RegistrarEntradaResponse{
		Mensaje:       "entrada registrada",
		CostoAplicado: resumen.CostoAplicado,
	}
	if resumen.Sugerencia != nil {
		s := toSugerenciaResponse(resumen.Sugerencia)
		resp.Sugerencia = &s
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// respuestaError mapea errores de dominio a códigos HTTP. Los errores de
// validación son 400; la sesión expirada fuerza 403 sin reintento; los
// fallos del backend (incluida la inconsistencia parcial) son 502 con el
// mensaje original del servidor.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDACION", Message: err.Error()})
	case errors.Is(err, domain.ErrSesionExpirada):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SESION_EXPIRADA", Message: "sesión expirada, inicie sesión de nuevo"})
	case errors.Is(err, domain.ErrEntradaNoRegistrada):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "ENTRADA_NO_REGISTRADA", Message: err.Error()})
	case errors.Is(err, domain.ErrBackend):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	case errors.Is(err, domain.ErrCancelado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CANCELADO", Message: "operación cancelada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNO", Message: err.Error()})
}

// toEntradaInput traduce el request al input del caso de uso.
func toEntradaInput(req dto.SugerenciaRequest) (appcosting.EntradaInput, error) {
	var fecha time.Time
	if req.Fecha != "" {
		t, err := time.Parse(time.RFC3339, req.Fecha)
		if err != nil {
			return appcosting.EntradaInput{}, domain.ErrInvalidInput
		}
		fecha = t
	}
	return appcosting.EntradaInput{
		Comerciable: entity.Comerciable{
			ID:        req.Comerciable.ID,
			Nombre:    req.Comerciable.Nombre,
			Cantidad:  req.Comerciable.Cantidad,
			CostoCUP:  req.Comerciable.CostoCUP,
			CostoUSD:  req.Comerciable.CostoUSD,
			PrecioCUP: req.Comerciable.PrecioCUP,
			PrecioUSD: req.Comerciable.PrecioUSD,
		},
		Cantidad:        req.Cantidad,
		CostoCUP:        req.CostoCUP,
		CostoUSD:        req.CostoUSD,
		NombreProveedor: req.NombreProveedor,
		Fecha:           fecha,
	}, nil
}

func toSugerenciaResponse(s *appcosting.Sugerencia) dto.SugerenciaResponse {
	return dto.SugerenciaResponse{
		Politica:  string(s.Politica),
		CostoCUP:  s.Sugerido.CUPFixed(),
		CostoUSD:  s.Sugerido.USDFixed(),
		ActualCUP: s.Actual.CUPFixed(),
		ActualUSD: s.Actual.USDFixed(),
	}
}
