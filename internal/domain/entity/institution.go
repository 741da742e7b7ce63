package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/painel-ajuda/internal/domain"
)

// Estados del ciclo de vida de una institución.
const (
	InstitutionPending  = "Pendente"
	InstitutionApproved = "Aprovada"
	InstitutionRejected = "Rejeitada"
)

// ValidInstitutionStatus indica si s es un estado conocido.
func ValidInstitutionStatus(s string) bool {
	switch s {
	case InstitutionPending, InstitutionApproved, InstitutionRejected:
		return true
	}
	return false
}

// Institution representa una cuenta de organización con ciclo de aprobación.
// La copia autoritativa vive en el servidor; esta es la réplica de la caché.
type Institution struct {
	ID             int64      `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Nome           string     `json:"nome"`
	Responsavel    string     `json:"responsavel"`
	Tipo           string     `json:"tipo_instituicao"`
	Telefone       string     `json:"telefone,omitempty"`
	Endereco       string     `json:"endereco,omitempty"`
	DocumentoLegal string     `json:"documento_legal,omitempty"`
	Descricao      string     `json:"descricao,omitempty"`
	Estado         string     `json:"estado"`
	Aprovada       bool       `json:"aprovada"`
	Ativa          bool       `json:"ativa"`
	PodeEliminar   bool       `json:"pode_eliminar"`
	DataCriacao    *Timestamp `json:"data_criacao,omitempty"`
	DataAprovacao  *Timestamp `json:"data_aprovacao,omitempty"`
	MotivoRejeicao string     `json:"motivo_rejeicao,omitempty"`
}

// NormalizeStatus completa Estado a partir de Aprovada cuando el servidor
// solo envía el booleano (listado de pendientes).
func (i *Institution) NormalizeStatus() {
	if i.Estado == "" {
		if i.Aprovada {
			i.Estado = InstitutionApproved
		} else {
			i.Estado = InstitutionPending
		}
	}
	i.Aprovada = i.Estado == InstitutionApproved
}

// InstitutionType opción del catálogo de tipos de institución.
type InstitutionType struct {
	Valor string `json:"valor"`
	Nome  string `json:"nome"`
}

// InstitutionRegistration datos del formulario público de registro.
type InstitutionRegistration struct {
	Nome           string `json:"nome"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	Responsavel    string `json:"responsavel"`
	Tipo           string `json:"tipo_instituicao"`
	Telefone       string `json:"telefone,omitempty"`
	Endereco       string `json:"endereco,omitempty"`
	DocumentoLegal string `json:"documento_legal,omitempty"`
	Descricao      string `json:"descricao,omitempty"`
}

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	telefoneRe = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

// Validate comprobación previa al envío; la API vuelve a validar.
// Devuelve todos los problemas encontrados en un único error.
func (r InstitutionRegistration) Validate() error {
	var erros []string
	required := []struct{ campo, valor string }{
		{"Nome", r.Nome},
		{"Username", r.Username},
		{"Password", r.Password},
		{"Email", r.Email},
		{"Responsavel", r.Responsavel},
		{"Tipo Instituicao", r.Tipo},
	}
	for _, f := range required {
		if strings.TrimSpace(f.valor) == "" {
			erros = append(erros, f.campo+" é obrigatório")
		}
	}
	if r.Email != "" && !emailRe.MatchString(r.Email) {
		erros = append(erros, "Email inválido")
	}
	if u := strings.TrimSpace(r.Username); u != "" {
		if len(u) < 3 {
			erros = append(erros, "Username deve ter pelo menos 3 caracteres")
		}
		if !usernameRe.MatchString(u) {
			erros = append(erros, "Username deve conter apenas letras, números e underscore")
		}
	}
	if r.Password != "" && len(r.Password) < 6 {
		erros = append(erros, "Password deve ter pelo menos 6 caracteres")
	}
	if t := strings.TrimSpace(r.Telefone); t != "" && !telefoneRe.MatchString(t) {
		erros = append(erros, "Telefone inválido")
	}
	if len(erros) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(erros, "; "))
	}
	return nil
}
