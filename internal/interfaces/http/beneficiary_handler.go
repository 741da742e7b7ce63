package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// BeneficiaryHandler lista, búsqueda y alta de beneficiarios.
type BeneficiaryHandler struct {
	uc *usecase.BeneficiaryUseCase
}

// NewBeneficiaryHandler construye el handler.
func NewBeneficiaryHandler(uc *usecase.BeneficiaryUseCase) *BeneficiaryHandler {
	return &BeneficiaryHandler{uc: uc}
}

// List godoc
// @Summary      Listar beneficiarios
// @Description  Búsqueda sin acentos ni mayúsculas sobre nome, NIF, zona y contacto.
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Término de búsqueda"
// @Success      200  {object}  dto.BeneficiaryListView
// @Router       /api/beneficiarios [get]
func (h *BeneficiaryHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List(c.Query("q")))
}

// Refresh godoc
// @Summary      Recargar beneficiarios
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BeneficiaryListView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/refresh [post]
func (h *BeneficiaryHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de beneficiario
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Param        nif  path  string  true  "NIF"
// @Success      200  {object}  entity.Beneficiary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/{nif} [get]
func (h *BeneficiaryHandler) Get(c *fiber.Ctx) error {
	nif, err := url.PathUnescape(c.Params("nif"))
	if err != nil || nif == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "nif es requerido"})
	}
	out, err := h.uc.Get(c.UserContext(), nif)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registar beneficiario
// @Tags         beneficiarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Beneficiary  true  "Datos del beneficiario"
// @Success      201   {object}  entity.Beneficiary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/beneficiarios [post]
func (h *BeneficiaryHandler) Create(c *fiber.Ctx) error {
	var in entity.Beneficiary
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de ayudas de un beneficiario
// @Description  Sirve la caché salvo con refresh=true. Una salida confirmada invalida la entrada.
// @Tags         beneficiarios
// @Security     Bearer
// @Produce      json
// @Param        nif      path   string  true   "NIF"
// @Param        refresh  query  bool    false  "Pedir de nuevo al servidor"
// @Success      200  {object}  entity.BeneficiaryHistory
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/beneficiarios/{nif}/historico [get]
func (h *BeneficiaryHandler) History(c *fiber.Ctx) error {
	nif, err := url.PathUnescape(c.Params("nif"))
	if err != nil || nif == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "nif es requerido"})
	}
	out, err := h.uc.History(c.UserContext(), nif, c.QueryBool("refresh"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
