package entity

// SessionInstitution institución autenticada según la API remota.
type SessionInstitution struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Username string `json:"username"`
	Admin    bool   `json:"admin"`
}

// Availability respuesta de verificación de username/email.
type Availability struct {
	Disponivel bool   `json:"disponivel"`
	Campo      string `json:"campo,omitempty"`
}
