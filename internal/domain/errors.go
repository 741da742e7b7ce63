package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// ErrTransport: la petición no llegó al servidor o la respuesta no se pudo decodificar.
	ErrTransport = errors.New("fallo de comunicación con la API")
	// ErrRejected: el servidor respondió success:false.
	ErrRejected = errors.New("operación rechazada por el servidor")
	// ErrUnknownID: mutación pedida para un id que no está en la caché local.
	ErrUnknownID = errors.New("id no presente en la caché")
	// ErrInFlight: ya hay una mutación en curso para el mismo registro.
	ErrInFlight = errors.New("operación en curso para este registro")
)

// RejectionError transporta el mensaje legible devuelto por el servidor en {success:false, error}.
type RejectionError struct {
	Status  int
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (http %d)", ErrRejected.Error(), e.Status)
	}
	return e.Message
}

// Is permite errors.Is(err, ErrRejected).
func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// UserMessage devuelve el texto a mostrar al usuario para un error de la API.
// Para rechazos es el mensaje del servidor; para el resto, un texto genérico.
func UserMessage(err error, fallback string) string {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message
	}
	if errors.Is(err, ErrTransport) {
		return "Erro de conexão"
	}
	return fallback
}
