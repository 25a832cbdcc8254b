package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid resolve o domínio do e-mail via DNS: aceita quando
// existe registro MX ou, na falta dele, um A/AAAA. Barra typo de domínio
// no cadastro sem tentar validar a caixa postal em si.
func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// domínio sem MX mas com A/AAAA ainda recebe e-mail (RFC 5321 §5.1)
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}
