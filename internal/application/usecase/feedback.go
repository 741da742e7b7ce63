package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// feedback agrupa lo que comparten los casos de uso: la guardia de
// operaciones en curso, las notificaciones y el log.
type feedback struct {
	inflight *viewstate.InFlight
	notify   notify.Notifier
	log      *logger.Logger
}

// mutation describe una mutación confirmada por el servidor.
// call hace exactamente una petición; apply sólo corre si call tuvo éxito.
// Con okMsg vacío el llamador publica su propia notificación.
type mutation struct {
	key     string
	op      string
	call    func(ctx context.Context) error
	apply   func() error
	okMsg   string
	failMsg string
}

// run ejecuta m: reserva la clave, llama al servidor y, sólo con confirmación,
// modifica la caché. Cualquier fallo deja la caché intacta y notifica al usuario
// con el mensaje del servidor.
func (f feedback) run(ctx context.Context, m mutation) error {
	release, err := f.inflight.Begin(m.key)
	if err != nil {
		f.log.Warn().Str("op", m.op).Str("key", m.key).Msg("mutación duplicada ignorada")
		f.notify.Push(notify.LevelWarning, "Operação já em curso, aguarde")
		return err
	}
	defer release()

	if err := m.call(ctx); err != nil {
		f.fail(err, m.op, m.failMsg)
		return err
	}
	if m.apply != nil {
		if err := m.apply(); err != nil {
			if !errors.Is(err, domain.ErrUnknownID) {
				return err
			}
			// El servidor confirmó pero el registro no estaba en la vista.
			f.log.Warn().Err(err).Str("op", m.op).Str("key", m.key).Msg("mutación confirmada para un registro fuera de la caché")
		}
	}
	if m.okMsg != "" {
		f.notify.Push(notify.LevelSuccess, m.okMsg)
	}
	return nil
}

// fail registra el error y publica la notificación correspondiente.
func (f feedback) fail(err error, op, fallback string) {
	ev := f.log.Error()
	if errors.Is(err, domain.ErrRejected) {
		ev = f.log.Warn()
	}
	ev.Err(err).Str("op", op).Msg("operación fallida")
	f.notify.Push(notify.LevelError, domain.UserMessage(err, fallback))
}
