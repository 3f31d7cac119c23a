package http

import (
	"context"
	"crypto/x509"
	"errors"
	"net"

	"github.com/fwojciec/pagesift"
)

// classifyTransportError maps a transport-level failure onto the pagesift
// error taxonomy. Timeouts become ETIMEOUT (worth a render attempt later);
// DNS, connection, and certificate failures become ENETWORK, which a
// browser render cannot fix.
func classifyTransportError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pagesift.Errorf(pagesift.ETIMEOUT, "fetch timed out for %s", url)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return pagesift.Errorf(pagesift.ETIMEOUT, "fetch timed out for %s", url)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return pagesift.Errorf(pagesift.ENETWORK, "name resolution failed for %s: %v", url, dnsErr)
	}

	if isCertificateError(err) {
		return pagesift.Errorf(pagesift.ENETWORK, "certificate verification failed for %s: %v", url, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return pagesift.Errorf(pagesift.ENETWORK, "connection failed for %s: %v", url, opErr)
	}

	// Anything else at the transport layer (redirect loops, protocol
	// errors) is still a network-layer problem a render will not fix.
	return pagesift.Errorf(pagesift.ENETWORK, "fetch failed for %s: %v", url, err)
}

// isCertificateError reports whether err stems from TLS certificate
// verification.
func isCertificateError(err error) bool {
	var (
		invalidErr   x509.CertificateInvalidError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
	)
	return errors.As(err, &invalidErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostnameErr)
}
