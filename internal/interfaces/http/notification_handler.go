package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
)

// NotificationHandler avisos temporales para la interfaz.
type NotificationHandler struct {
	center *notify.Center
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{center: center}
}

// List godoc
// @Summary      Notificaciones activas
// @Tags         notificacoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NotificationListView
// @Router       /api/notificacoes [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NotificationListView{Notificacoes: h.center.Active()})
}

// Dismiss godoc
// @Summary      Descartar notificación
// @Tags         notificacoes
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notificacoes/{id} [delete]
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	if !h.center.Dismiss(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "notificação não encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
