package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/painel-ajuda/internal/domain"
)

func TestRejectionError_IsErrRejected(t *testing.T) {
	var err error = &domain.RejectionError{Status: 400, Message: "Instituição já aprovada"}
	wrapped := fmt.Errorf("aprovar: %w", err)

	assert.ErrorIs(t, wrapped, domain.ErrRejected)
	assert.NotErrorIs(t, wrapped, domain.ErrTransport)
	assert.Equal(t, "Instituição já aprovada", err.Error())

	var rej *domain.RejectionError
	assert.True(t, errors.As(wrapped, &rej))
	assert.Equal(t, 400, rej.Status)
}

func TestRejectionError_SinMensaje(t *testing.T) {
	err := &domain.RejectionError{Status: 500}
	assert.Contains(t, err.Error(), "http 500")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "x", domain.UserMessage(&domain.RejectionError{Status: 200, Message: "x"}, "genérico"))
	assert.Equal(t, "Erro de conexão", domain.UserMessage(fmt.Errorf("%w: timeout", domain.ErrTransport), "genérico"))
	assert.Equal(t, "genérico", domain.UserMessage(&domain.RejectionError{Status: 500}, "genérico"))
	assert.Equal(t, "genérico", domain.UserMessage(errors.New("otro"), "genérico"))
}
