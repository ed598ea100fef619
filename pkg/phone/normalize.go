package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "BR"

// NormalizeE164 formata o telefone em E.164. Retorna o valor aparado quando não é possível interpretá-lo.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// IsMobile indica se o número é um celular válido, requisito para envio por WhatsApp
func IsMobile(input string) bool {
	number, err := phonenumbers.Parse(strings.TrimSpace(input), defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return false
	}

	numberType := phonenumbers.GetNumberType(number)
	return numberType == phonenumbers.MOBILE || numberType == phonenumbers.FIXED_LINE_OR_MOBILE
}

// WhatsAppID retorna o número sem o prefixo "+", formato aceito pela API do WhatsApp
func WhatsAppID(input string) string {
	return strings.TrimPrefix(NormalizeE164(input), "+")
}
