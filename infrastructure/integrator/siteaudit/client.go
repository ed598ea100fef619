package siteaudit

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

var ErrBlockedAddress = errors.New("endereço não público bloqueado")

// faixa compartilhada de CGNAT (RFC 6598), fora de netip.Addr.IsPrivate
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// NewPublicClient cria um cliente HTTP que só conecta em endereços públicos.
// A checagem acontece no dial, depois da resolução de DNS, e vale também para redirecionamentos.
func NewPublicClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: timeout,
		Control: guardPublicAddress,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func guardPublicAddress(network, address string, _ syscall.RawConn) error {
	addrPort, err := netip.ParseAddrPort(address)
	if err != nil {
		return errors.Wrap(ErrBlockedAddress, fmt.Sprintf("endereço inválido %q", address))
	}

	ip := addrPort.Addr().Unmap()
	if !isPublic(ip) {
		return errors.Wrap(ErrBlockedAddress, ip.String())
	}
	return nil
}

func isPublic(ip netip.Addr) bool {
	return ip.IsValid() &&
		!ip.IsLoopback() &&
		!ip.IsPrivate() &&
		!ip.IsLinkLocalUnicast() &&
		!ip.IsLinkLocalMulticast() &&
		!ip.IsInterfaceLocalMulticast() &&
		!ip.IsMulticast() &&
		!ip.IsUnspecified() &&
		!sharedAddressSpace.Contains(ip)
}
