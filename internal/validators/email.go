package validators

import (
	"net/mail"
	"strings"
)

// IsEmail reports whether email is a bare address with a dotted domain,
// e.g. contacto@barbersmart.com. Display names are rejected.
func IsEmail(email string) bool {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return false
	}

	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
