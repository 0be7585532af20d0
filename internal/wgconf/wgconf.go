package wgconf

import (
	"fmt"
	"strings"

	"github.com/theyusa/Rebecca-sub000/internal/domain"
)

// Render produces a wg-quick client profile for a registered account.
// Address lines get host-route suffixes (/32, /128) unless the stored
// address already carries one; empty fields drop their lines.
func Render(a domain.Account) string {
	var b strings.Builder

	b.WriteString("[Interface]\n")
	if a.PrivateKey != "" {
		fmt.Fprintf(&b, "PrivateKey = %s\n", a.PrivateKey)
	}
	if addrs := addresses(a); len(addrs) > 0 {
		fmt.Fprintf(&b, "Address = %s\n", strings.Join(addrs, ", "))
	}
	b.WriteString("DNS = 1.1.1.1\n")

	b.WriteString("\n[Peer]\n")
	if a.PeerPublicKey != "" {
		fmt.Fprintf(&b, "PublicKey = %s\n", a.PeerPublicKey)
	}
	b.WriteString("AllowedIPs = 0.0.0.0/0, ::/0\n")
	if a.PeerEndpoint != "" {
		fmt.Fprintf(&b, "Endpoint = %s\n", a.PeerEndpoint)
	}

	return b.String()
}

func addresses(a domain.Account) []string {
	var out []string
	if a.AddressV4 != "" {
		out = append(out, withSuffix(a.AddressV4, "/32"))
	}
	if a.AddressV6 != "" {
		out = append(out, withSuffix(a.AddressV6, "/128"))
	}
	return out
}

func withSuffix(addr, suffix string) string {
	if strings.Contains(addr, "/") {
		return addr
	}
	return addr + suffix
}
