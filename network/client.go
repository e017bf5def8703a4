// Package network provides the pre-configured HTTP client shared by every GraphQL request.
package network

import (
	"net/http"
	"time"
)

// Client is the HTTP client shared across clients that do not bring their own.
// It sets no overall request timeout; callers bound requests with a context.
var Client = &http.Client{
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with pool and handshake parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 32
	t.IdleConnTimeout = 90 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}
