package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// StockHandler catálogo, movimientos y distribución.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Items godoc
// @Summary      Catálogo de artículos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockView
// @Router       /api/stock/itens [get]
func (h *StockHandler) Items(c *fiber.Ctx) error {
	return c.JSON(h.uc.Items())
}

// RefreshItems godoc
// @Summary      Recargar catálogo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stock/itens/refresh [post]
func (h *StockHandler) RefreshItems(c *fiber.Ctx) error {
	out, err := h.uc.RefreshItems(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Registro de movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  false  "entrada | saida"
// @Success      200   {object}  dto.MovementListView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/movimentos [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.Movements(c.Query("tipo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RefreshMovements godoc
// @Summary      Recargar movimientos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MovementListView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stock/movimentos/refresh [post]
func (h *StockHandler) RefreshMovements(c *fiber.Ctx) error {
	out, err := h.uc.RefreshMovements(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Entrada godoc
// @Summary      Registar entrada (doação)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.EntradaRequest  true  "item_id, quantidade"
// @Success      201   {object}  entity.Movement
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/entrada [post]
func (h *StockHandler) Entrada(c *fiber.Ctx) error {
	var in entity.EntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterEntrada(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Saida godoc
// @Summary      Registar saída (distribuição)
// @Description  Si la API devuelve alertas responde 200 con requer_confirmacao=true y no registra nada;
// @Description  reenviar con forcar_distribuicao=true para confirmar.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.SaidaRequest  true  "item_id, quantidade, beneficiario_nif"
// @Success      200   {object}  entity.SaidaResult
// @Success      201   {object}  entity.SaidaResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/saida [post]
func (h *StockHandler) Saida(c *fiber.Ctx) error {
	var in entity.SaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterSaida(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	if out.RequerConfirmacao {
		return c.JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DistributionForm godoc
// @Summary      Datos del formulario de salida
// @Description  Carga en paralelo artículos y beneficiarios.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DistributionFormView
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/stock/formulario-saida [get]
func (h *StockHandler) DistributionForm(c *fiber.Ctx) error {
	out, err := h.uc.DistributionForm(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen de stock en PDF
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/stock/resumo.pdf [get]
func (h *StockHandler) SummaryPDF(c *fiber.Ctx) error {
	doc, err := h.uc.SummaryPDF(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, "resumo-stock.pdf", doc)
}

func sendPDF(c *fiber.Ctx, filename string, doc []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(doc)
}
