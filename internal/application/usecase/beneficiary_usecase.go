package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/painel-ajuda/internal/application/dto"
	"github.com/jhoicas/painel-ajuda/internal/application/notify"
	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
	"github.com/jhoicas/painel-ajuda/internal/domain/repository"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// BeneficiaryUseCase lista, búsqueda y alta de beneficiarios.
type BeneficiaryUseCase struct {
	repo  repository.BeneficiaryRepository
	store *viewstate.Store
	fb    feedback
}

// NewBeneficiaryUseCase construye el caso de uso.
func NewBeneficiaryUseCase(repo repository.BeneficiaryRepository, store *viewstate.Store, n notify.Notifier, log *logger.Logger) *BeneficiaryUseCase {
	return &BeneficiaryUseCase{
		repo:  repo,
		store: store,
		fb:    feedback{inflight: store.InFlight, notify: n, log: log.Component("beneficiarios")},
	}
}

// Refresh recarga la caché de beneficiarios.
func (uc *BeneficiaryUseCase) Refresh(ctx context.Context) (*dto.BeneficiaryListView, error) {
	gen := uc.store.Beneficiaries.Generation()
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.fb.fail(err, "listar", "Erro ao carregar beneficiários")
		return nil, err
	}
	if uc.store.Beneficiaries.LoadIf(list, gen) {
		uc.store.MarkLoaded(viewstate.KindBeneficiaries)
	}
	view := uc.List("")
	return &view, nil
}

// List proyección de la caché filtrada por term (vacío = todos).
func (uc *BeneficiaryUseCase) List(term string) dto.BeneficiaryListView {
	list := uc.store.Beneficiaries.Search(term)
	return dto.BeneficiaryListView{
		Termo:         strings.TrimSpace(term),
		Total:         len(list),
		Beneficiarios: list,
	}
}

// Get consulta el detalle en la API. Si el NIF está en caché se sustituye
// por el registro devuelto (total_ajudas actualizado por el servidor).
func (uc *BeneficiaryUseCase) Get(ctx context.Context, nif string) (*entity.Beneficiary, error) {
	b, err := uc.repo.Get(ctx, nif)
	if err != nil {
		return nil, err
	}
	if uc.store.Beneficiaries.Has(b.NIF) {
		uc.store.Beneficiaries.Append(*b)
	}
	return b, nil
}

// Create da de alta un beneficiario y, confirmado, lo añade a la caché.
func (uc *BeneficiaryUseCase) Create(ctx context.Context, in entity.Beneficiary) (*entity.Beneficiary, error) {
	in.NIF = strings.TrimSpace(in.NIF)
	in.Nome = strings.TrimSpace(in.Nome)
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var created *entity.Beneficiary
	err := uc.fb.run(ctx, mutation{
		key: viewstate.Key(viewstate.KindBeneficiaries, in.NIF),
		op:  "criar",
		call: func(ctx context.Context) error {
			b, err := uc.repo.Create(ctx, in)
			created = b
			return err
		},
		apply: func() error {
			uc.store.Beneficiaries.Append(*created)
			return nil
		},
		okMsg:   "Beneficiário registado com sucesso!",
		failMsg: "Erro ao registar beneficiário",
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// History historial de ayudas recibidas por nif. Se sirve desde la caché salvo
// que no exista o refresh sea true; una salida confirmada para nif la invalida.
func (uc *BeneficiaryUseCase) History(ctx context.Context, nif string, refresh bool) (*entity.BeneficiaryHistory, error) {
	nif = strings.TrimSpace(nif)
	if nif == "" {
		return nil, fmt.Errorf("%w: nif é obrigatório", domain.ErrInvalidInput)
	}
	if !refresh {
		if h, ok := uc.store.Histories.Get(nif); ok {
			return &h, nil
		}
	}
	h, err := uc.repo.History(ctx, nif)
	if err != nil {
		uc.fb.fail(err, "historico", "Erro ao carregar histórico")
		return nil, err
	}
	if h.Movimentos == nil {
		h.Movimentos = []entity.Movement{}
	}
	uc.store.Histories.Append(*h)
	return h, nil
}
