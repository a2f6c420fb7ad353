// internal/infra/phonemeta/lookup.go
package phonemeta

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"phone_lookup_bot/internal/domain/phone"
)

// MetadataLookup implements phone.Lookup using the embedded libphonenumber
// metadata shipped with github.com/nyaruka/phonenumbers.
type MetadataLookup struct {
	lang string // Language for country and carrier names, e.g. "en"
}

func NewMetadataLookup(lang string) *MetadataLookup {
	if lang == "" {
		lang = "en"
	}
	return &MetadataLookup{lang: lang}
}

// Resolve parses the normalized number, validates it and resolves country and
// carrier names. A syntactically broken input yields phone.ErrNotANumber; a
// parseable but unassignable number yields phone.ErrInvalidNumber. Missing
// country or carrier metadata is returned as an empty string, not an error.
func (l *MetadataLookup) Resolve(number string) (*phone.Info, error) {
	parsed, err := phonenumbers.Parse(number, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", phone.ErrNotANumber, err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return nil, phone.ErrInvalidNumber
	}

	country, err := phonenumbers.GetGeocodingForNumber(parsed, l.lang)
	if err != nil {
		country = ""
	}
	carrier, err := phonenumbers.GetCarrierForNumber(parsed, l.lang)
	if err != nil {
		carrier = ""
	}

	return &phone.Info{
		Number:  number,
		Country: country,
		Carrier: carrier,
	}, nil
}
