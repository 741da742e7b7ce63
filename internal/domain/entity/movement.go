package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/painel-ajuda/internal/domain"
)

// Tipos de movimiento de stock.
const (
	MovementEntrada = "entrada" // doación recibida
	MovementSaida   = "saida"   // distribución a un beneficiario
)

// Movement entrada inmutable del registro de movimientos.
type Movement struct {
	ID               int64           `json:"id"`
	ItemID           int64           `json:"item_id"`
	ItemNome         string          `json:"item_nome,omitempty"`
	ItemUnidade      string          `json:"item_unidade,omitempty"`
	InstituicaoID    int64           `json:"instituicao_id"`
	InstituicaoNome  string          `json:"instituicao_nome,omitempty"`
	BeneficiarioNIF  string          `json:"beneficiario_nif,omitempty"`
	BeneficiarioNome string          `json:"beneficiario_nome,omitempty"`
	Tipo             string          `json:"tipo_movimento"`
	Quantidade       decimal.Decimal `json:"quantidade"`
	Data             *Timestamp      `json:"data,omitempty"`
	Motivo           string          `json:"motivo,omitempty"`
	Observacoes      string          `json:"observacoes,omitempty"`
	OrigemDoacao     string          `json:"origem_doacao,omitempty"`
	LocalEntrega     string          `json:"local_entrega,omitempty"`
}

// EntradaRequest datos para registrar una entrada de stock.
type EntradaRequest struct {
	ItemID       int64           `json:"item_id"`
	Quantidade   decimal.Decimal `json:"quantidade"`
	OrigemDoacao string          `json:"origem_doacao,omitempty"`
	Motivo       string          `json:"motivo,omitempty"`
	Observacoes  string          `json:"observacoes,omitempty"`
}

// SaidaRequest datos para registrar una salida a un beneficiario.
// ForcarDistribuicao confirma la distribución pese a las alertas.
type SaidaRequest struct {
	ItemID             int64           `json:"item_id"`
	Quantidade         decimal.Decimal `json:"quantidade"`
	BeneficiarioNIF    string          `json:"beneficiario_nif"`
	LocalEntrega       string          `json:"local_entrega,omitempty"`
	Motivo             string          `json:"motivo,omitempty"`
	Observacoes        string          `json:"observacoes,omitempty"`
	ForcarDistribuicao bool            `json:"forcar_distribuicao,omitempty"`
}

// SaidaResult resultado de una salida. Si RequerConfirmacao es true, el
// movimiento no se registró (Movement es nil) y Alertas explica por qué;
// reenviar con ForcarDistribuicao para confirmar.
type SaidaResult struct {
	RequerConfirmacao bool      `json:"requer_confirmacao"`
	Alertas           []string  `json:"alertas,omitempty"`
	Sugestoes         []string  `json:"sugestoes,omitempty"`
	Mensagem          string    `json:"message,omitempty"`
	Movement          *Movement `json:"movimento,omitempty"`
}

// Validate item y cantidad positiva son obligatorios.
func (r EntradaRequest) Validate() error {
	return validateQuantity(r.ItemID, r.Quantidade)
}

// Validate además del item y la cantidad exige el NIF del beneficiario.
func (r SaidaRequest) Validate() error {
	if err := validateQuantity(r.ItemID, r.Quantidade); err != nil {
		return err
	}
	if strings.TrimSpace(r.BeneficiarioNIF) == "" {
		return fmt.Errorf("%w: beneficiario_nif é obrigatório", domain.ErrInvalidInput)
	}
	return nil
}

func validateQuantity(itemID int64, qty decimal.Decimal) error {
	if itemID <= 0 {
		return fmt.Errorf("%w: item e quantidade são obrigatórios", domain.ErrInvalidInput)
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: a quantidade deve ser positiva", domain.ErrInvalidInput)
	}
	return nil
}
