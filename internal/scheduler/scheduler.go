// Package scheduler recarga periódicamente las cachés ya abiertas y descarta
// las notificaciones expiradas.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// pruneEvery frecuencia del descarte de notificaciones.
const pruneEvery = "@every 1s"

// Job recarga de una colección. Solo se ejecuta si la colección ya se cargó
// alguna vez (hay una vista abierta que mantener al día).
type Job struct {
	Kind    viewstate.Kind
	Refresh func(ctx context.Context) error
}

type loadTracker interface {
	LoadedAt(kind viewstate.Kind) (time.Time, bool)
}

type pruner interface {
	Prune() int
}

// Scheduler gestiona las tareas programadas.
type Scheduler struct {
	cron    *cron.Cron
	expr    string
	store   loadTracker
	notify  pruner
	jobs    []Job
	timeout time.Duration
	log     *logger.Logger
}

// New crea el scheduler. expr es una expresión cron (admite @every); vacío
// desactiva la recarga y deja solo el descarte de notificaciones.
func New(expr string, store loadTracker, notify pruner, jobs []Job, timeout time.Duration, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Scheduler{
		cron:    cron.New(),
		expr:    expr,
		store:   store,
		notify:  notify,
		jobs:    jobs,
		timeout: timeout,
		log:     log.Component("scheduler"),
	}
}

// Start registra las tareas y arranca el cron.
func (s *Scheduler) Start() error {
	if s.expr != "" {
		if _, err := s.cron.AddFunc(s.expr, s.RefreshLoaded); err != nil {
			return fmt.Errorf("scheduler: expresión de recarga %q: %w", s.expr, err)
		}
	}
	if s.notify != nil {
		if _, err := s.cron.AddFunc(pruneEvery, s.prune); err != nil {
			return fmt.Errorf("scheduler: descarte de notificaciones: %w", err)
		}
	}
	s.log.Info().Str("refresh", s.expr).Int("jobs", len(s.jobs)).Msg("scheduler iniciado")
	s.cron.Start()
	return nil
}

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info().Msg("scheduler detenido")
}

// RefreshLoaded recarga cada colección ya cargada. Los fallos se registran y
// no detienen el resto; la caché anterior se conserva.
func (s *Scheduler) RefreshLoaded() {
	for _, j := range s.jobs {
		if _, ok := s.store.LoadedAt(j.Kind); !ok {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		err := j.Refresh(ctx)
		cancel()
		if err != nil {
			s.log.Warn().Err(err).Str("kind", string(j.Kind)).Msg("recarga periódica fallida")
			continue
		}
		s.log.Debug().Str("kind", string(j.Kind)).Msg("recarga periódica")
	}
}

func (s *Scheduler) prune() {
	if n := s.notify.Prune(); n > 0 {
		s.log.Trace().Int("removed", n).Msg("notificaciones expiradas")
	}
}
