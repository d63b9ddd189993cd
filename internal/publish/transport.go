package publish

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// Timeouts applied to every request of the edit API. Uploads of large bundles
// need a generous ceiling.
const (
	ConnectTimeout      = 2 * time.Minute
	ReadTimeout         = 2 * time.Minute
	TLSHandshakeTimeout = 30 * time.Second
	KeepAlive           = 30 * time.Second
)

var sharedHTTPClient = sync.OnceValue(newHTTPClient)

// SharedHTTPClient returns the process-wide HTTP client, created on first use
func SharedHTTPClient() *http.Client {
	return sharedHTTPClient()
}

func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   ConnectTimeout,
		KeepAlive: KeepAlive,
	}).DialContext
	transport.TLSHandshakeTimeout = TLSHandshakeTimeout
	transport.ResponseHeaderTimeout = ReadTimeout

	// No overall client timeout: it would also bound the upload body.
	return &http.Client{Transport: transport}
}
