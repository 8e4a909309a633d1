// Package validators holds request checks that need more than a binding tag.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain resolves. MX
// records are checked first; domains that receive mail on a bare A/AAAA
// record pass on the host lookup.
func IsEmailDomainValid(email string) bool {
	domain, ok := emailDomain(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
