package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// resolver é trocável em teste.
var resolver = net.DefaultResolver

const lookupTimeout = 3 * time.Second

// IsEmailDomainValid verifica se o domínio do email resolve: MX
// primeiro, A/AAAA como fallback. Falha de DNS conta como inválido.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
