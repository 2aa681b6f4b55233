package client

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"

	"github.com/kod2ulz/gostart/collections"
)

const HeaderForwardedFor = "X-Forwarded-For"

type customerIPKey struct{}

// ContextWithCustomerIP attaches the end customer's address to ctx. It takes
// precedence over the address cached on the Gateway but not over SetClientIP.
func ContextWithCustomerIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}
	return context.WithValue(ctx, customerIPKey{}, ip)
}

// ContextWithRequest resolves the customer address of r and attaches it to ctx.
func ContextWithRequest(ctx context.Context, r *http.Request) context.Context {
	return ContextWithCustomerIP(ctx, ResolveIP(r))
}

func CustomerIPFromContext(ctx context.Context) (ip string, ok bool) {
	if ctx == nil {
		return
	}
	ip, ok = ctx.Value(customerIPKey{}).(string)
	return ip, ok && ip != ""
}

// ResolveIP returns the leftmost X-Forwarded-For entry, else the peer address of r,
// else UnknownIP.
func ResolveIP(r *http.Request) string {
	if r == nil {
		return UnknownIP
	}
	return resolveIP(r.Header.Get(HeaderForwardedFor), r.RemoteAddr)
}

func resolveIP(forwardedFor, remoteAddr string) string {
	if forwardedFor = strings.TrimSpace(forwardedFor); forwardedFor != "" {
		var parts collections.List[string] = strings.Split(forwardedFor, ", ")
		if first := strings.TrimSpace(parts.First()); first != "" {
			return first
		}
	}
	if remoteAddr == "" {
		return UnknownIP
	} else if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

type ipResolver struct {
	mu       sync.Mutex
	override string
	cached   string
	source   *http.Request
}

func (r *ipResolver) set(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.override = ip
}

func (r *ipResolver) resolve(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.override != "" {
		return r.override
	} else if ip, ok := CustomerIPFromContext(ctx); ok {
		return ip
	} else if r.cached == "" {
		r.cached = ResolveIP(r.source)
	}
	return r.cached
}
