package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// InstitutionHandler panel de administración de instituciones (rol admin).
type InstitutionHandler struct {
	uc *usecase.InstitutionUseCase
}

// NewInstitutionHandler construye el handler.
func NewInstitutionHandler(uc *usecase.InstitutionUseCase) *InstitutionHandler {
	return &InstitutionHandler{uc: uc}
}

// Panel godoc
// @Summary      Panel de instituciones
// @Description  Proyección de la caché. Sin estado usa la pestaña activa.
// @Tags         instituicoes
// @Security     Bearer
// @Produce      json
// @Param        estado  query  string  false  "Pendente | Aprovada | Rejeitada | all"
// @Success      200     {object}  dto.InstitutionPanelView
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/instituicoes [get]
func (h *InstitutionHandler) Panel(c *fiber.Ctx) error {
	estado := c.Query("estado")
	if estado == "" {
		return c.JSON(h.uc.Panel())
	}
	f, err := viewstate.ParseStatusFilter(estado)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.PanelFor(f))
}

// Refresh godoc
// @Summary      Recargar instituciones
// @Tags         instituicoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InstitutionPanelView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/instituicoes/refresh [post]
func (h *InstitutionHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetTab godoc
// @Summary      Cambiar la pestaña activa
// @Tags         instituicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetTabRequest  true  "tab"
// @Success      200   {object}  dto.InstitutionPanelView
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/instituicoes/tab [put]
func (h *InstitutionHandler) SetTab(c *fiber.Ctx) error {
	var in dto.SetTabRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetActiveTab(in.Tab)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar institución
// @Tags         instituicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la institución"
// @Success      200  {object}  dto.InstitutionPanelView
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/instituicoes/{id}/aprovar [post]
func (h *InstitutionHandler) Approve(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Approve(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Panel())
}

// Reject godoc
// @Summary      Rechazar institución
// @Tags         instituicoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID de la institución"
// @Param        body  body  dto.RejectInstitutionRequest  true  "motivo"
// @Success      200   {object}  dto.InstitutionPanelView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/instituicoes/{id}/rejeitar [post]
func (h *InstitutionHandler) Reject(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.RejectInstitutionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Reject(c.UserContext(), id, in.Motivo); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Panel())
}

// Delete godoc
// @Summary      Eliminar institución
// @Tags         instituicoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la institución"
// @Success      200  {object}  dto.InstitutionPanelView
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/instituicoes/{id} [delete]
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.uc.Panel())
}

// Register godoc
// @Summary      Registo público de institución
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  entity.InstitutionRegistration  true  "Datos de la institución"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/registro [post]
func (h *InstitutionHandler) Register(c *fiber.Ctx) error {
	var in entity.InstitutionRegistration
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Registo efetuado! Aguarde a aprovação do administrador."})
}

// Availability godoc
// @Summary      Comprobar disponibilidad de username o email
// @Tags         registro
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AvailabilityRequest  true  "campo, valor"
// @Success      200   {object}  entity.Availability
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registro/disponibilidade [post]
func (h *InstitutionHandler) Availability(c *fiber.Ctx) error {
	var in dto.AvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CheckAvailability(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Types godoc
// @Summary      Tipos de institución
// @Tags         registro
// @Produce      json
// @Success      200  {array}  entity.InstitutionType
// @Router       /api/registro/tipos [get]
func (h *InstitutionHandler) Types(c *fiber.Ctx) error {
	out, err := h.uc.Types(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
}
