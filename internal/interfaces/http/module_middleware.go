package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
)

// loadTracker es el contrato mínimo que necesita el middleware para saber si
// una colección ya se cargó. Lo implementa *viewstate.Store.
type loadTracker interface {
	LoadedAt(kind viewstate.Kind) (time.Time, bool)
}

// EnsureLoaded devuelve un middleware Fiber que, si la colección kind nunca se
// cargó, la carga con refresh antes de servir la vista. Las cargas posteriores
// son explícitas (rutas /refresh) o del scheduler.
//
// Si la carga falla responde con el error mapeado (502 si la API no responde)
// y no llama al handler.
func EnsureLoaded(kind viewstate.Kind, store loadTracker, refresh func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := store.LoadedAt(kind); ok {
			return c.Next()
		}
		if err := refresh(c.UserContext()); err != nil {
			return writeError(c, err)
		}
		return c.Next()
	}
}
