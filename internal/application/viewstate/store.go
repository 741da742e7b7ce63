package viewstate

import (
	"sync"
	"time"

	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// Kind identifica cada colección del Store.
type Kind string

// Colecciones.
const (
	KindInstitutions  Kind = "instituicoes"
	KindBeneficiaries Kind = "beneficiarios"
	KindItems         Kind = "itens"
	KindMovements     Kind = "movimentos"
	KindReports       Kind = "relatorios"
	KindPeriods       Kind = "periodos"
	KindDashboard     Kind = "dashboard"
	KindEquity        Kind = "alertas"
)

// DefaultTab pestaña inicial del panel de instituciones.
const DefaultTab = FilterPending

// Store agrupa las cachés y el estado explícito de la vista. Se crea una vez
// por proceso y se inyecta en los casos de uso; no hay estado global.
type Store struct {
	Institutions  *InstitutionCache
	Beneficiaries *BeneficiaryCache
	Items         *Collection[int64, entity.StockItem]
	Movements     *Collection[int64, entity.Movement]
	Reports       *Collection[entity.ReportPeriod, entity.MonthlyReport]
	Periods       *Collection[entity.ReportPeriod, entity.PeriodOption]
	Histories     *Collection[string, entity.BeneficiaryHistory]
	Dashboard     *Value[entity.Dashboard]
	Equity        *Value[entity.EquityPanel]
	InFlight      *InFlight

	mu        sync.RWMutex
	activeTab StatusFilter
	loadedAt  map[Kind]time.Time
	now       func() time.Time
}

// NewStore crea un Store vacío. now puede ser nil (time.Now).
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		Institutions:  NewInstitutionCache(),
		Beneficiaries: NewBeneficiaryCache(),
		Items:         NewCollection(func(i entity.StockItem) int64 { return i.ID }),
		Movements:     NewCollection(func(m entity.Movement) int64 { return m.ID }),
		Reports:       NewCollection(func(r entity.MonthlyReport) entity.ReportPeriod { return r.Period() }),
		Periods:       NewCollection(func(p entity.PeriodOption) entity.ReportPeriod { return p.Period() }),
		Histories:     NewCollection(func(h entity.BeneficiaryHistory) string { return h.NIF }),
		Dashboard:     NewValue[entity.Dashboard](),
		Equity:        NewValue[entity.EquityPanel](),
		InFlight:      NewInFlight(),
		activeTab:     DefaultTab,
		loadedAt:      map[Kind]time.Time{},
		now:           now,
	}
}

// ActiveTab pestaña activa del panel de instituciones.
func (s *Store) ActiveTab() StatusFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}

// SetActiveTab cambia la pestaña activa.
func (s *Store) SetActiveTab(tab StatusFilter) {
	s.mu.Lock()
	s.activeTab = tab
	s.mu.Unlock()
}

// MarkLoaded registra el instante de la última carga completa de kind.
func (s *Store) MarkLoaded(kind Kind) {
	s.mu.Lock()
	s.loadedAt[kind] = s.now()
	s.mu.Unlock()
}

// LoadedAt instante de la última carga de kind; false si nunca se cargó.
func (s *Store) LoadedAt(kind Kind) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.loadedAt[kind]
	return t, ok
}

// Reset vacía todas las colecciones (cierre de sesión).
func (s *Store) Reset() {
	s.Institutions.Load(nil)
	s.Beneficiaries.Load(nil)
	s.Items.Load(nil)
	s.Movements.Load(nil)
	s.Reports.Load(nil)
	s.Periods.Load(nil)
	s.Histories.Load(nil)
	s.Dashboard.Clear()
	s.Equity.Clear()

	s.mu.Lock()
	s.activeTab = DefaultTab
	s.loadedAt = map[Kind]time.Time{}
	s.mu.Unlock()
}
