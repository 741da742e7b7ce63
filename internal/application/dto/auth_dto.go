package dto

import "github.com/jhoicas/painel-ajuda/internal/domain/entity"

// LoginRequest credenciales de la API remota.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token del painel y la institución autenticada.
type LoginResponse struct {
	Token       string                    `json:"token"`
	Role        string                    `json:"role"`
	Instituicao entity.SessionInstitution `json:"instituicao"`
}
