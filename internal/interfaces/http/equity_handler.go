package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
)

// EquityHandler alertas de distribución equitativa.
type EquityHandler struct {
	uc *usecase.EquityUseCase
}

// NewEquityHandler construye el handler.
func NewEquityHandler(uc *usecase.EquityUseCase) *EquityHandler {
	return &EquityHandler{uc: uc}
}

// View godoc
// @Summary      Panel de equidad
// @Description  Beneficiarios con menos ayuda, informe de distribución de 30 días y límites por categoría.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EquityView
// @Router       /api/alertas [get]
func (h *EquityHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

// Refresh godoc
// @Summary      Recargar el panel de equidad
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.EquityView
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/alertas/refresh [post]
func (h *EquityHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// LeastHelped godoc
// @Summary      Beneficiarios con menos ayuda
// @Description  Consulta directa al servidor, sin caché.
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "Categoría de artículos"
// @Param        limite     query  int     false  "1-100, por defecto 10"
// @Success      200  {object}  dto.LeastHelpedView
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/alertas/menos-ajuda [get]
func (h *EquityHandler) LeastHelped(c *fiber.Ctx) error {
	limite := c.QueryInt("limite", 0)
	if c.Query("limite") != "" && limite == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limite inválido"})
	}
	out, err := h.uc.LeastHelped(c.UserContext(), c.Query("categoria"), limite)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
