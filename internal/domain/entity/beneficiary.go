package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/painel-ajuda/internal/domain"
)

// Beneficiary destinatario de ayuda identificado por su NIF (único).
// TotalAjudas es un contador derivado calculado por el servidor.
type Beneficiary struct {
	NIF            string     `json:"nif"`
	Nome           string     `json:"nome"`
	Idade          *int       `json:"idade,omitempty"`
	Endereco       string     `json:"endereco,omitempty"`
	Contacto       string     `json:"contacto,omitempty"`
	NumAgregado    *int       `json:"num_agregado,omitempty"`
	Necessidades   string     `json:"necessidades,omitempty"`
	Observacoes    string     `json:"observacoes,omitempty"`
	ZonaResidencia string     `json:"zona_residencia,omitempty"`
	PerdasPedidos  string     `json:"perdas_pedidos,omitempty"`
	InstituicaoID  *int64     `json:"instituicao_registro_id,omitempty"`
	DataRegistro   *Timestamp `json:"data_registro,omitempty"`
	TotalAjudas    int        `json:"total_ajudas"`
}

// Validate NIF y nombre son obligatorios.
func (b Beneficiary) Validate() error {
	if strings.TrimSpace(b.NIF) == "" || strings.TrimSpace(b.Nome) == "" {
		return fmt.Errorf("%w: NIF e nome são obrigatórios", domain.ErrInvalidInput)
	}
	return nil
}

// BeneficiaryHistory salidas recibidas por un beneficiario, más recientes
// primero. HasMore indica que el servidor tiene más páginas.
type BeneficiaryHistory struct {
	NIF        string     `json:"nif"`
	Total      int        `json:"total"`
	HasMore    bool       `json:"has_more"`
	Movimentos []Movement `json:"movimentos"`
}
