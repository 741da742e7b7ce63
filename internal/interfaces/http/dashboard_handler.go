package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
)

// DashboardHandler painel inicial.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// View godoc
// @Summary      Estadísticas, actividad reciente y avisos de stock
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Router       /api/dashboard [get]
func (h *DashboardHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.uc.View())
}

// Refresh godoc
// @Summary      Recargar el painel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
