package viewstate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-ajuda/internal/application/viewstate"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

func TestStore_EstadoInicial(t *testing.T) {
	s := viewstate.NewStore(nil)

	assert.Equal(t, viewstate.FilterPending, s.ActiveTab())
	_, ok := s.LoadedAt(viewstate.KindInstitutions)
	assert.False(t, ok)
	assert.Zero(t, s.Institutions.Len())
}

func TestStore_MarkLoadedUsaReloj(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s := viewstate.NewStore(func() time.Time { return now })

	s.MarkLoaded(viewstate.KindItems)
	got, ok := s.LoadedAt(viewstate.KindItems)
	assert.True(t, ok)
	assert.Equal(t, now, got)
}

func TestStore_Reset(t *testing.T) {
	s := viewstate.NewStore(nil)
	s.Institutions.Load([]entity.Institution{inst(1, entity.InstitutionPending)})
	s.Beneficiaries.Load([]entity.Beneficiary{{NIF: "1", Nome: "A"}})
	s.Items.Load([]entity.StockItem{{ID: 1}})
	s.Movements.Load([]entity.Movement{{ID: 1}})
	s.Reports.Load([]entity.MonthlyReport{{Ano: 2025, Mes: 1}})
	s.Periods.Load([]entity.PeriodOption{{Ano: 2025, Mes: 1}})
	s.Histories.Load([]entity.BeneficiaryHistory{{NIF: "1"}})
	s.Dashboard.Load(entity.Dashboard{Stats: entity.DashboardStats{Instituicao: entity.InstitutionStats{Nome: "Cáritas"}}})
	s.Equity.Load(entity.EquityPanel{})
	s.SetActiveTab(viewstate.FilterRejected)
	s.MarkLoaded(viewstate.KindInstitutions)

	s.Reset()

	assert.Zero(t, s.Institutions.Len())
	assert.Zero(t, s.Beneficiaries.Len())
	assert.Zero(t, s.Items.Len())
	assert.Zero(t, s.Movements.Len())
	assert.Zero(t, s.Reports.Len())
	assert.Zero(t, s.Periods.Len())
	assert.Zero(t, s.Histories.Len())
	_, ok := s.Dashboard.Get()
	assert.False(t, ok, "el dashboard de la sesión anterior se descarta")
	_, ok = s.Equity.Get()
	assert.False(t, ok)
	assert.Equal(t, viewstate.DefaultTab, s.ActiveTab())
	_, ok = s.LoadedAt(viewstate.KindInstitutions)
	assert.False(t, ok)
}
