package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeE164(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "celular com DDD", input: "(11) 91234-5678", expected: "+5511912345678"},
		{name: "já em E.164", input: "+5511912345678", expected: "+5511912345678"},
		{name: "vazio", input: "   ", expected: ""},
		{name: "inválido mantém entrada", input: "abc", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeE164(tt.input))
		})
	}
}

func TestWhatsAppID(t *testing.T) {
	assert.Equal(t, "5511912345678", WhatsAppID("11 91234-5678"))
	assert.True(t, IsMobile("11 91234-5678"))
}
