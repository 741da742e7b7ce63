package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

func validRegistration() entity.InstitutionRegistration {
	return entity.InstitutionRegistration{
		Nome:        "Banco Alimentar",
		Username:    "banco_alimentar",
		Email:       "geral@banco.pt",
		Password:    "segredo1",
		Responsavel: "Rita",
		Tipo:        "ONG",
		Telefone:    "+351 912 000 000",
	}
}

func TestInstitutionRegistration_Valida(t *testing.T) {
	assert.NoError(t, validRegistration().Validate())
}

func TestInstitutionRegistration_Invalida(t *testing.T) {
	cases := map[string]func(r *entity.InstitutionRegistration){
		"sin nome":          func(r *entity.InstitutionRegistration) { r.Nome = "  " },
		"email inválido":    func(r *entity.InstitutionRegistration) { r.Email = "sem-arroba" },
		"username corto":    func(r *entity.InstitutionRegistration) { r.Username = "ab" },
		"username inválido": func(r *entity.InstitutionRegistration) { r.Username = "banco-alimentar" },
		"password corta":    func(r *entity.InstitutionRegistration) { r.Password = "123" },
		"telefone inválido": func(r *entity.InstitutionRegistration) { r.Telefone = "ligar já" },
		"sin tipo":          func(r *entity.InstitutionRegistration) { r.Tipo = "" },
	}
	for name, mutate := range cases {
		r := validRegistration()
		mutate(&r)
		assert.ErrorIs(t, r.Validate(), domain.ErrInvalidInput, name)
	}
}

func TestSaidaRequest_Validate(t *testing.T) {
	ok := entity.SaidaRequest{ItemID: 1, Quantidade: decimal.NewFromInt(2), BeneficiarioNIF: "123"}
	assert.NoError(t, ok.Validate())

	sinNIF := ok
	sinNIF.BeneficiarioNIF = " "
	assert.ErrorIs(t, sinNIF.Validate(), domain.ErrInvalidInput)

	cero := ok
	cero.Quantidade = decimal.Zero
	assert.ErrorIs(t, cero.Validate(), domain.ErrInvalidInput)

	sinItem := ok
	sinItem.ItemID = 0
	assert.ErrorIs(t, sinItem.Validate(), domain.ErrInvalidInput)
}

func TestEntradaRequest_CantidadNegativa(t *testing.T) {
	r := entity.EntradaRequest{ItemID: 1, Quantidade: decimal.NewFromInt(-1)}
	assert.ErrorIs(t, r.Validate(), domain.ErrInvalidInput)
}

func TestBeneficiary_Validate(t *testing.T) {
	assert.NoError(t, entity.Beneficiary{NIF: "1", Nome: "A"}.Validate())
	assert.ErrorIs(t, entity.Beneficiary{NIF: "1"}.Validate(), domain.ErrInvalidInput)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Março", entity.MonthName(3))
	assert.Equal(t, "Dezembro", entity.MonthName(12))
	assert.Equal(t, "Mês 13", entity.MonthName(13))
}
