package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/internal/domain/entity"
)

// StockRepository implementa repository.StockRepository.
type StockRepository struct {
	c *Client
}

// NewStockRepository construye el repositorio.
func NewStockRepository(c *Client) *StockRepository {
	return &StockRepository{c: c}
}

// ListItems artículos activos con su stock calculado por el servidor.
func (r *StockRepository) ListItems(ctx context.Context) ([]entity.StockItem, error) {
	var out struct {
		Itens []entity.StockItem `json:"itens"`
	}
	if err := r.c.call(ctx, http.MethodGet, "/api/stock/itens", nil, &out, true); err != nil {
		return nil, err
	}
	return out.Itens, nil
}

// ListMovements movimientos de la institución, más recientes primero.
func (r *StockRepository) ListMovements(ctx context.Context) ([]entity.Movement, error) {
	var out struct {
		Movimentos []entity.Movement `json:"movimentos"`
		Pagination *pagination       `json:"pagination"`
	}
	path := fmt.Sprintf("/api/stock/movimentos?per_page=%d", listPageSize)
	if err := r.c.call(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	r.c.warnTruncated(path, out.Pagination)
	return out.Movimentos, nil
}

// entradaWire cuerpo de /api/stock/entrada; la cantidad viaja como número.
type entradaWire struct {
	ItemID       int64       `json:"item_id"`
	Quantidade   json.Number `json:"quantidade"`
	OrigemDoacao string      `json:"origem_doacao,omitempty"`
	Motivo       string      `json:"motivo,omitempty"`
	Observacoes  string      `json:"observacoes,omitempty"`
}

// RegisterEntrada registra una donación recibida.
func (r *StockRepository) RegisterEntrada(ctx context.Context, in entity.EntradaRequest) (*entity.Movement, error) {
	body := entradaWire{
		ItemID:       in.ItemID,
		Quantidade:   json.Number(in.Quantidade.String()),
		OrigemDoacao: in.OrigemDoacao,
		Motivo:       in.Motivo,
		Observacoes:  in.Observacoes,
	}
	var out struct {
		Movimento *entity.Movement `json:"movimento"`
	}
	if err := r.c.call(ctx, http.MethodPost, "/api/stock/entrada", body, &out, true); err != nil {
		return nil, err
	}
	return out.Movimento, nil
}

type saidaWire struct {
	ItemID             int64       `json:"item_id"`
	Quantidade         json.Number `json:"quantidade"`
	BeneficiarioNIF    string      `json:"beneficiario_nif"`
	LocalEntrega       string      `json:"local_entrega,omitempty"`
	Motivo             string      `json:"motivo,omitempty"`
	Observacoes        string      `json:"observacoes,omitempty"`
	ForcarDistribuicao bool        `json:"forcar_distribuicao,omitempty"`
}

type saidaResponse struct {
	Success             *bool            `json:"success"`
	Error               string           `json:"error"`
	Message             string           `json:"message"`
	RequerConfirmacao   bool             `json:"requer_confirmacao"`
	Alertas             []string         `json:"alertas"`
	AlertasInformativos []string         `json:"alertas_informativos"`
	Sugestoes           []string         `json:"sugestoes"`
	Movimento           *entity.Movement `json:"movimento"`
}

// RegisterSaida registra una distribución. Si el servidor pide confirmación
// por alertas de equidad, devuelve el resultado con RequerConfirmacao y sin
// movimiento; no es un error.
func (r *StockRepository) RegisterSaida(ctx context.Context, in entity.SaidaRequest) (*entity.SaidaResult, error) {
	body := saidaWire{
		ItemID:             in.ItemID,
		Quantidade:         json.Number(in.Quantidade.String()),
		BeneficiarioNIF:    in.BeneficiarioNIF,
		LocalEntrega:       in.LocalEntrega,
		Motivo:             in.Motivo,
		Observacoes:        in.Observacoes,
		ForcarDistribuicao: in.ForcarDistribuicao,
	}
	var out saidaResponse
	if err := r.c.call(ctx, http.MethodPost, "/api/stock/saida", body, &out, false); err != nil {
		return nil, err
	}
	if out.RequerConfirmacao {
		return &entity.SaidaResult{
			RequerConfirmacao: true,
			Alertas:           out.Alertas,
			Sugestoes:         out.Sugestoes,
			Mensagem:          out.Message,
		}, nil
	}
	if out.Success == nil || !*out.Success {
		return nil, &domain.RejectionError{Status: http.StatusOK, Message: out.Error}
	}
	return &entity.SaidaResult{
		Alertas:   out.AlertasInformativos,
		Sugestoes: out.Sugestoes,
		Mensagem:  out.Message,
		Movement:  out.Movimento,
	}, nil
}
