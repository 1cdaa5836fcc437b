package validate

import (
	"net/mail"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/idna"
)

const (
	maxLocalPartLength = 64
	maxDomainLength    = 253
)

// Email checks if an email address is syntactically valid
// and supports internationalized domain names (RFC 6531).
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return eris.New("email cannot be empty")
	}

	// Parse the email address for syntax validation
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return eris.Wrap(err, "invalid email syntax")
	}
	// Reject display-name forms like "Ada <ada@example.com>"
	if addr.Address != strings.TrimSpace(email) {
		return eris.New("invalid email syntax: expected a bare address")
	}

	at := strings.LastIndex(addr.Address, "@")
	localPart := addr.Address[:at]
	domainPart := addr.Address[at+1:]

	if len(localPart) > maxLocalPartLength {
		return eris.New("local part too long: maximum 64 characters")
	}

	// Normalize domain to ASCII (Punycode) to support Unicode domains
	normalizedDomain, err := idna.Lookup.ToASCII(domainPart)
	if err != nil {
		return eris.Wrap(err, "invalid domain (Unicode normalization failed)")
	}

	if len(normalizedDomain) > maxDomainLength {
		return eris.New("domain too long: maximum 253 characters")
	}

	return nil
}

// Required checks that a form field is not blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return eris.Errorf("%s cannot be empty", field)
	}
	return nil
}
