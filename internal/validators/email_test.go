package validators

import (
	"context"
	"errors"
	"net"
	"testing"
)

func TestIsEmailDomainValid_Syntax(t *testing.T) {
	cases := []string{
		"",
		"sin-arroba",
		"termina-en@",
		"@",
	}

	for _, email := range cases {
		if IsEmailDomainValid(context.Background(), email) {
			t.Fatalf("IsEmailDomainValid(%q) = true, want false", email)
		}
	}
}

func TestIsEmailDomainValid_UnresolvableDomain(t *testing.T) {
	old := resolver
	t.Cleanup(func() { resolver = old })

	// resolver que nunca conecta: toda consulta DNS falha
	resolver = &net.Resolver{
		PreferGo: true,
		Dial: func(_ context.Context, _, _ string) (net.Conn, error) {
			return nil, errors.New("dns unavailable")
		},
	}

	if IsEmailDomainValid(context.Background(), "alguien@kinaf.example") {
		t.Fatalf("domain without MX/A records accepted")
	}
}
