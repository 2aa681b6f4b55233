package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"net/http"
	"os"

	"github.com/kod2ulz/fatzebra-gateway/stores"
	"github.com/pkg/errors"
)

const (
	HeaderUserAgent   = "User-Agent"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	ContentTypeJSON   = "application/json"
)

// Doer is the part of *http.Client the Gateway needs.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// ObjectStore fetches a CA bundle from object storage.
type ObjectStore interface {
	StreamObject(ctx context.Context, bucket, key string, out stores.ObjectReaderFunc) error
}

func UserAgent() string {
	return "FatZebra Go Library " + Version
}

// certPool returns nil when neither pem nor path is set, meaning the system store.
func certPool(path string, pem []byte) (pool *x509.CertPool, err error) {
	if len(pem) == 0 && path != "" {
		if pem, err = os.ReadFile(path); err != nil {
			return nil, errors.Wrapf(err, "failed to read CA bundle %s", path)
		}
	}
	if len(pem) == 0 {
		return nil, nil
	}
	pool = x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.Errorf("no certificates found in CA bundle")
	}
	return
}

func tlsConfig(pool *x509.CertPool) *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		RootCAs:    pool,
	}
}

func newHTTPClient(pool *x509.CertPool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = tlsConfig(pool)
	return &http.Client{Transport: transport}
}

func readCABundle(ctx context.Context, store ObjectStore, bucket, key string) (out []byte, err error) {
	err = store.StreamObject(ctx, bucket, key, func(size int64, _ string, reader io.ReadCloser) error {
		defer reader.Close()
		return stores.ReadAll(&out, size, reader)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch CA bundle %s/%s", bucket, key)
	}
	return
}

// transportError separates timeouts from every other failure to complete a request.
func transportError(err error) *Error {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return TimeoutError(err)
	}
	return TransportError(err)
}
