package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the address's domain resolves to a mail
// host. MX is checked first; a bare A/AAAA record is accepted as the RFC 5321
// fallback. Syntax beyond the domain part is left to the request binding.
func IsEmailDomainValid(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return false
	}

	if records, err := net.LookupMX(domain); err == nil && len(records) > 0 {
		return true
	}

	addrs, err := net.LookupIP(domain)
	return err == nil && len(addrs) > 0
}
