package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationEmailEmbedsCode(t *testing.T) {
	subject, html := ActivationEmail("Romeu", "482913")
	assert.Equal(t, "Ativação da conta", subject)
	assert.Contains(t, html, "482913")
	assert.Contains(t, html, "Romeu")
}

func TestServiceResponseEmailEmbedsDecision(t *testing.T) {
	_, html := ServiceResponseEmail("Romeu", "Maria", "aceito")
	assert.Contains(t, html, "aceito")
	assert.Contains(t, html, "Maria")

	_, html = ServiceResponseEmail("Romeu", "Maria", "rejeitado")
	assert.Contains(t, html, "rejeitado")
}
