package phone

import (
	"fmt"
	"strings"
)

// Custom errors for the lookup pipeline.
var ErrNotANumber = fmt.Errorf("text is not a phone number")
var ErrInvalidNumber = fmt.Errorf("phone number is not valid")

// Info holds the resolved metadata for a normalized phone number.
// Country and Carrier may be empty when the underlying data source has no entry.
type Info struct {
	Number  string
	Country string
	Carrier string
}

// Lookup resolves country and carrier information for a normalized number.
type Lookup interface {
	Resolve(number string) (*Info, error)
}

// Normalize turns free-text input into a canonical "+"-prefixed digit string.
// Exactly nine remaining digits are treated as a national number and get the
// configured default country calling code prepended. No validation happens
// here; the lookup adapter rejects implausible numbers.
func Normalize(raw, defaultCountryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) == 9 {
		return "+" + defaultCountryCode + digits
	}
	return "+" + digits
}

// TelegramLink builds a deep link that opens a Telegram chat with the number.
func TelegramLink(number string) string {
	return "https://t.me/" + number
}

// WhatsAppLink builds a deep link that opens a WhatsApp chat with the number.
func WhatsAppLink(number string) string {
	return "https://wa.me/" + number
}
