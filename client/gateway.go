package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/kod2ulz/gostart/logr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Request is implemented by every gateway operation.
type Request interface {
	Endpoint() Endpoint
	Validate() error
	// Payload builds the body. customerIP is the resolved end customer address;
	// requests for retrieval or administrative operations ignore it.
	Payload(customerIP string) Payload
}

type GatewayOption func(*Gateway)

func WithGatewayConfig(conf *GatewayConfig) GatewayOption {
	return func(g *Gateway) {
		if conf != nil {
			g.conf = *conf
		}
	}
}

func WithGatewayCredentials(username, token string, testMode bool) GatewayOption {
	return WithGatewayConfig(Credentials(username, token, testMode))
}

func WithGatewayURL(url string) GatewayOption {
	return func(g *Gateway) {
		g.conf.URL = url
	}
}

// WithAPIVersion sets the /v{version} path segment. An empty version drops it.
func WithAPIVersion(version string) GatewayOption {
	return func(g *Gateway) {
		g.conf.APIVersion, g.conf.Unversioned = version, version == ""
	}
}

func WithTimeout(timeout time.Duration) GatewayOption {
	return func(g *Gateway) {
		g.conf.Timeout = timeout
	}
}

func WithCABundle(path string) GatewayOption {
	return func(g *Gateway) {
		g.conf.CABundle = path
	}
}

func WithCABundlePEM(pem []byte) GatewayOption {
	return func(g *Gateway) {
		g.conf.CAPem = pem
	}
}

// WithClientIP fixes the customer address sent with every call.
func WithClientIP(ip string) GatewayOption {
	return func(g *Gateway) {
		g.conf.ClientIP = ip
	}
}

// WithRequest sets the inbound request the customer address is resolved from when a
// call context carries none. The result is cached for the lifetime of the Gateway.
func WithRequest(r *http.Request) GatewayOption {
	return func(g *Gateway) {
		g.ip.source = r
	}
}

// WithHTTPClient replaces the TLS client built from the CA settings.
func WithHTTPClient(doer Doer) GatewayOption {
	return func(g *Gateway) {
		g.custom = doer
	}
}

func WithGatewayDB(store CallStore) GatewayOption {
	return func(g *Gateway) {
		g.log.store = store
	}
}

func WithObjectStore(store ObjectStore) GatewayOption {
	return func(g *Gateway) {
		g.objects = store
	}
}

func GatewayClient(ctx context.Context, log *logr.Logger, opts ...GatewayOption) (out *Gateway, err error) {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if log != nil && log.Entry != nil {
		entry = log.Entry
	}
	out = &Gateway{log: &gatewayLogger{Entry: entry.WithField("client", "fatzebra")}}
	for i := range opts {
		opts[i](out)
	}
	if out.conf.Unversioned {
		out.conf.APIVersion = ""
	} else if out.conf.APIVersion == "" {
		out.conf.APIVersion = DefaultVersion
	}
	if out.conf.Timeout == 0 {
		out.conf.Timeout = DefaultTimeout
	}
	if err = out.conf.validate(); err != nil {
		return nil, err
	} else if err = out.init(ctx); err != nil {
		return nil, err
	}
	out.ip.set(out.conf.ClientIP)
	return
}

type Gateway struct {
	mu      sync.RWMutex
	log     *gatewayLogger
	conf    GatewayConfig
	ip      ipResolver
	headers http.Header
	custom  Doer
	doer    Doer
	objects ObjectStore
}

func (g *Gateway) init(ctx context.Context) (err error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(g.loadHeaders)
	eg.Go(func() error { return g.loadTransport(ctx) })
	return eg.Wait()
}

func (g *Gateway) loadHeaders() (err error) {
	g.headers = http.Header{}
	g.headers.Set(HeaderUserAgent, UserAgent())
	g.headers.Set(HeaderAccept, ContentTypeJSON)
	return
}

func (g *Gateway) loadTransport(ctx context.Context) (err error) {
	if g.custom != nil {
		g.doer = g.custom
		return
	}
	if len(g.conf.CAPem) == 0 && g.conf.CAObject != "" {
		if g.objects == nil {
			return errors.Errorf("CA bundle %s/%s configured without an object store", g.conf.CABucket, g.conf.CAObject)
		} else if g.conf.CAPem, err = readCABundle(ctx, g.objects, g.conf.CABucket, g.conf.CAObject); err != nil {
			return
		}
		g.log.WithField("object", g.conf.CAObject).Info("loaded CA bundle from storage")
	}
	return g.rebuildTransport(g.conf.CABundle, g.conf.CAPem)
}

// rebuildTransport commits the CA settings and the client built from them together,
// leaving both untouched when the bundle is rejected.
func (g *Gateway) rebuildTransport(path string, pem []byte) (err error) {
	pool, err := certPool(path, pem)
	if err != nil {
		return err
	}
	g.conf.CABundle, g.conf.CAPem = path, pem
	if g.custom != nil {
		g.doer = g.custom
	} else {
		g.doer = newHTTPClient(pool)
	}
	return
}

// Config returns a copy of the current configuration.
func (g *Gateway) Config() GatewayConfig {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.conf
}

func (g *Gateway) TestMode() bool {
	return g.Config().TestMode
}

func (g *Gateway) SetTimeout(timeout time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.conf.Timeout = timeout
}

// SetCABundle switches to the bundle at path. An empty path uses the system store.
func (g *Gateway) SetCABundle(path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rebuildTransport(path, nil)
}

func (g *Gateway) SetCABundlePEM(pem []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rebuildTransport(g.conf.CABundle, pem)
}

// SetClientIP overrides the customer address for all later calls.
func (g *Gateway) SetClientIP(ip string) {
	g.mu.Lock()
	g.conf.ClientIP = ip
	g.mu.Unlock()
	g.ip.set(ip)
}

// CustomerIP is the address that would be attached to a call made with ctx.
func (g *Gateway) CustomerIP(ctx context.Context) string {
	return g.ip.resolve(ctx)
}

// Do validates req, builds its payload and performs exactly one request. Only
// failures to complete the exchange are returned as errors.
func (g *Gateway) Do(ctx context.Context, req Request) (out Response, err error) {
	if err = req.Validate(); err != nil {
		return
	}
	var body Payload
	endpoint := req.Endpoint()
	customerIP := g.ip.resolve(ctx)
	if endpoint.Method.HasBody() {
		body = req.Payload(customerIP).Clone().Set("test", g.TestMode())
	}
	return g.send(ctx, endpoint, customerIP, body)
}

func (g *Gateway) send(ctx context.Context, endpoint Endpoint, customerIP string, body Payload) (out Response, err error) {
	var reader io.Reader
	var res *http.Response
	var data []byte

	g.mu.RLock()
	conf, doer := g.conf, g.doer
	g.mu.RUnlock()

	url := endpoint.Url(conf.BaseURL(), conf.APIVersion)
	requestID := RequestID(ctx)
	if body != nil {
		if data, err = json.Marshal(body); err != nil {
			return out, InvalidArgument("payload could not be encoded as JSON: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	logCtx := ctx
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(endpoint.Method), url, reader)
	if err != nil {
		return out, TransportError(errors.Wrapf(err, "failed to build %s %s", endpoint.Method, url))
	}
	httpReq.Header = g.headers.Clone()
	httpReq.SetBasicAuth(conf.Username, conf.Token)
	if body != nil {
		httpReq.Header.Set(HeaderContentType, ContentTypeJSON)
	}

	g.log.Request(logCtx, requestID, endpoint.Method, url, customerIP, body)
	if res, err = doer.Do(httpReq); err != nil {
		callErr := transportError(err)
		g.log.Response(logCtx, requestID, 0, nil, callErr)
		return out, callErr
	}
	defer res.Body.Close()
	if data, err = io.ReadAll(res.Body); err != nil {
		callErr := transportError(errors.Wrap(err, "failed to read response body"))
		g.log.Response(logCtx, requestID, res.StatusCode, nil, callErr)
		return out, callErr
	}
	out, err = Normalize(res.StatusCode, data)
	g.log.Response(logCtx, requestID, res.StatusCode, data, err)
	return
}
