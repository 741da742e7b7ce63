package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

var tabLabels = map[viewstate.StatusFilter]string{
	viewstate.FilterPending:  "Pendentes",
	viewstate.FilterApproved: "Aprovadas",
	viewstate.FilterRejected: "Rejeitadas",
	viewstate.FilterAll:      "Todas",
}

// InstitutionUseCase panel de administración de instituciones.
type InstitutionUseCase struct {
	repo  repository.InstitutionRepository
	store *viewstate.Store
	fb    feedback
}

// NewInstitutionUseCase construye el caso de uso.
func NewInstitutionUseCase(repo repository.InstitutionRepository, store *viewstate.Store, n notify.Notifier, log *logger.Logger) *InstitutionUseCase {
	return &InstitutionUseCase{
		repo:  repo,
		store: store,
		fb:    feedback{inflight: store.InFlight, notify: n, log: log.Component("instituicoes")},
	}
}

// Refresh recarga la caché completa desde la API y devuelve el panel.
// Si falla, la caché anterior se conserva. Si durante la petición se confirmó
// una mutación, la respuesta puede ser anterior a ella y se descarta.
func (uc *InstitutionUseCase) Refresh(ctx context.Context) (*dto.InstitutionPanelView, error) {
	gen := uc.store.Institutions.Generation()
	list, err := uc.list(ctx)
	if err != nil {
		uc.fb.fail(err, "listar", "Erro ao carregar instituições")
		return nil, err
	}
	if uc.store.Institutions.LoadIf(list, gen) {
		uc.store.MarkLoaded(viewstate.KindInstitutions)
		uc.fb.log.Debug().Int("total", len(list)).Msg("instituciones cargadas")
	} else {
		uc.fb.log.Debug().Msg("listado descartado: mutación confirmada durante la petición")
	}
	view := uc.Panel()
	return &view, nil
}

// list pide el listado completo. Los servidores que solo exponen el de
// pendientes responden 404; en ese caso el panel se carga con ese.
func (uc *InstitutionUseCase) list(ctx context.Context) ([]entity.Institution, error) {
	list, err := uc.repo.List(ctx)
	var rej *domain.RejectionError
	if errors.As(err, &rej) && rej.Status == http.StatusNotFound {
		uc.fb.log.Info().Msg("listado completo no disponible; se cargan solo las pendientes")
		return uc.repo.ListPending(ctx)
	}
	return list, err
}

// Panel proyección de la caché para la pestaña activa. No hace peticiones.
func (uc *InstitutionUseCase) Panel() dto.InstitutionPanelView {
	return uc.panel(uc.store.ActiveTab())
}

// PanelFor como Panel pero para una pestaña concreta, sin cambiar la activa.
func (uc *InstitutionUseCase) PanelFor(tab viewstate.StatusFilter) dto.InstitutionPanelView {
	return uc.panel(tab)
}

// SetActiveTab cambia la pestaña activa y devuelve el panel resultante.
func (uc *InstitutionUseCase) SetActiveTab(tab string) (*dto.InstitutionPanelView, error) {
	f, err := viewstate.ParseStatusFilter(tab)
	if err != nil {
		return nil, err
	}
	uc.store.SetActiveTab(f)
	view := uc.panel(f)
	return &view, nil
}

func (uc *InstitutionUseCase) panel(tab viewstate.StatusFilter) dto.InstitutionPanelView {
	counts := uc.store.Institutions.Counts()
	tabs := make([]dto.TabView, 0, len(viewstate.Filters))
	for _, f := range viewstate.Filters {
		tabs = append(tabs, dto.TabView{
			Filter: string(f),
			Label:  tabLabels[f],
			Count:  counts[f],
			Active: f == tab,
		})
	}
	list := uc.store.Institutions.FilterByStatus(tab)
	view := dto.InstitutionPanelView{
		ActiveTab:    string(tab),
		Tabs:         tabs,
		Instituicoes: list,
		Vazio:        len(list) == 0,
	}
	if t, ok := uc.store.LoadedAt(viewstate.KindInstitutions); ok {
		view.LoadedAt = &t
	}
	return view
}

// Approve aprueba id en la API y, confirmado, lo marca Aprovada en la caché.
func (uc *InstitutionUseCase) Approve(ctx context.Context, id int64) error {
	return uc.fb.run(ctx, mutation{
		key:  viewstate.Key(viewstate.KindInstitutions, id),
		op:   "aprovar",
		call: func(ctx context.Context) error { return uc.repo.Approve(ctx, id) },
		apply: func() error {
			return uc.store.Institutions.ApplyStatusChange(id, entity.InstitutionApproved)
		},
		okMsg:   "Instituição aprovada com sucesso!",
		failMsg: "Erro ao aprovar instituição",
	})
}

// Reject rechaza id con el motivo indicado (obligatorio).
func (uc *InstitutionUseCase) Reject(ctx context.Context, id int64, motivo string) error {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return fmt.Errorf("%w: o motivo da rejeição é obrigatório", domain.ErrInvalidInput)
	}
	return uc.fb.run(ctx, mutation{
		key:  viewstate.Key(viewstate.KindInstitutions, id),
		op:   "rejeitar",
		call: func(ctx context.Context) error { return uc.repo.Reject(ctx, id, motivo) },
		apply: func() error {
			return uc.store.Institutions.ApplyStatusChange(id, entity.InstitutionRejected)
		},
		okMsg:   "Instituição rejeitada",
		failMsg: "Erro ao rejeitar instituição",
	})
}

// Delete elimina id. Si la caché indica que no es eliminable no se llama a la API.
func (uc *InstitutionUseCase) Delete(ctx context.Context, id int64) error {
	if inst, ok := uc.store.Institutions.Get(id); ok && !inst.PodeEliminar {
		return fmt.Errorf("%w: a instituição %d não pode ser eliminada", domain.ErrForbidden, id)
	}
	return uc.fb.run(ctx, mutation{
		key:  viewstate.Key(viewstate.KindInstitutions, id),
		op:   "eliminar",
		call: func(ctx context.Context) error { return uc.repo.Delete(ctx, id) },
		apply: func() error {
			uc.store.Institutions.Remove(id)
			return nil
		},
		okMsg:   "Instituição eliminada",
		failMsg: "Erro ao eliminar instituição",
	})
}

// Register envía el formulario público de registro. No toca la caché: la nueva
// institución aparecerá como Pendente en la próxima recarga.
func (uc *InstitutionUseCase) Register(ctx context.Context, in entity.InstitutionRegistration) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return uc.fb.run(ctx, mutation{
		key:     viewstate.Key(viewstate.KindInstitutions, "registro:"+strings.ToLower(in.Username)),
		op:      "registar",
		call:    func(ctx context.Context) error { return uc.repo.Register(ctx, in) },
		okMsg:   "Registo efetuado! Aguarde a aprovação do administrador.",
		failMsg: "Erro ao registar instituição",
	})
}

// CheckAvailability consulta si un username o email está libre.
func (uc *InstitutionUseCase) CheckAvailability(ctx context.Context, in dto.AvailabilityRequest) (*entity.Availability, error) {
	campo := strings.ToLower(strings.TrimSpace(in.Campo))
	if campo != "username" && campo != "email" {
		return nil, fmt.Errorf("%w: campo deve ser username ou email", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Valor) == "" {
		return nil, fmt.Errorf("%w: valor obrigatório", domain.ErrInvalidInput)
	}
	return uc.repo.CheckAvailability(ctx, campo, strings.TrimSpace(in.Valor))
}

// Types tipos de institución admitidos por la API.
func (uc *InstitutionUseCase) Types(ctx context.Context) ([]entity.InstitutionType, error) {
	return uc.repo.Types(ctx)
}
