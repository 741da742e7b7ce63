package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/usecase"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// ReportHandler informes mensuales.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// List godoc
// @Summary      Informes en caché
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportListView
// @Router       /api/relatorios [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Refresh godoc
// @Summary      Recargar informes
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportListView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/relatorios/refresh [post]
func (h *ReportHandler) Refresh(c *fiber.Ctx) error {
	out, err := h.uc.Refresh(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar informe mensual
// @Tags         relatorios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateReportRequest  true  "ano, mes"
// @Success      201   {object}  entity.MonthlyReport
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/relatorios/gerar [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Generate(c.UserContext(), entity.ReportPeriod{Ano: in.Ano, Mes: in.Mes})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PDF godoc
// @Summary      Informe mensual en PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Param        ano  path  int  true  "Año"
// @Param        mes  path  int  true  "Mes (1-12)"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/relatorios/{ano}/{mes}/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	ano, errAno := c.ParamsInt("ano")
	mes, errMes := c.ParamsInt("mes")
	if errAno != nil || errMes != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "ano e mês inválidos"})
	}
	doc, err := h.uc.PDF(c.UserContext(), entity.ReportPeriod{Ano: ano, Mes: mes})
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, fmt.Sprintf("relatorio-%04d-%02d.pdf", ano, mes), doc)
}

// Periods godoc
// @Summary      Meses con movimientos
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodListView
// @Router       /api/relatorios/periodos [get]
func (h *ReportHandler) Periods(c *fiber.Ctx) error {
	return c.JSON(h.uc.Periods())
}

// RefreshPeriods godoc
// @Summary      Recargar meses disponibles
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PeriodListView
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/relatorios/periodos/refresh [post]
func (h *ReportHandler) RefreshPeriods(c *fiber.Ctx) error {
	out, err := h.uc.RefreshPeriods(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ByMonth godoc
// @Summary      Informe de un mes
// @Description  Guardado=false indica una vista previa calculada por el servidor, no guardada.
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        ano  path  int  true  "Año"
// @Param        mes  path  int  true  "Mes (1-12)"
// @Success      200  {object}  dto.MonthlyReportView
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/{ano}/{mes} [get]
func (h *ReportHandler) ByMonth(c *fiber.Ctx) error {
	ano, errAno := c.ParamsInt("ano")
	mes, errMes := c.ParamsInt("mes")
	if errAno != nil || errMes != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PERIOD", Message: "ano e mês inválidos"})
	}
	out, err := h.uc.ByMonth(c.UserContext(), entity.ReportPeriod{Ano: ano, Mes: mes})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
