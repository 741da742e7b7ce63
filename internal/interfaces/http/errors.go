package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/domain"
)

// writeError traduce los errores de dominio a HTTP.
//
//	ErrInvalidInput → 400   ErrUnauthorized → 401   ErrForbidden → 403
//	ErrNotFound/ErrUnknownID → 404   ErrInFlight → 409
//	ErrRejected → 422 (401/403/404 si la API respondió con ese estado)
//	ErrTransport → 502
func writeError(c *fiber.Ctx, err error) error {
	status, code := statusOf(err)
	msg := domain.UserMessage(err, err.Error())
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func statusOf(err error) (int, string) {
	var rej *domain.RejectionError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownID):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInFlight):
		return fiber.StatusConflict, "IN_FLIGHT"
	case errors.As(err, &rej):
		switch rej.Status {
		case http.StatusUnauthorized:
			return fiber.StatusUnauthorized, "UNAUTHORIZED"
		case http.StatusForbidden:
			return fiber.StatusForbidden, "FORBIDDEN"
		case http.StatusNotFound:
			return fiber.StatusNotFound, "NOT_FOUND"
		}
		return fiber.StatusUnprocessableEntity, "REJECTED"
	case errors.Is(err, domain.ErrTransport):
		return fiber.StatusBadGateway, "UPSTREAM_UNAVAILABLE"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}
