package client

import (
	"fmt"
	"net/url"
	"strings"
)

type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
	MethodPut  Method = "PUT"
)

func (m Method) HasBody() bool {
	return m == MethodPost || m == MethodPut
}

type Endpoint struct {
	Method Method
	Uri    string
}

// Url joins host, the optional /v{version} segment and the endpoint path.
func (e Endpoint) Url(host, version string) string {
	host = strings.TrimSuffix(host, "/")
	if version == "" {
		return host + e.Uri
	}
	return fmt.Sprintf("%s/v%s%s", host, version, e.Uri)
}

func Get(format string, ids ...string) Endpoint {
	return Endpoint{Method: MethodGet, Uri: path(format, ids)}
}

func Post(format string, ids ...string) Endpoint {
	return Endpoint{Method: MethodPost, Uri: path(format, ids)}
}

func Put(format string, ids ...string) Endpoint {
	return Endpoint{Method: MethodPut, Uri: path(format, ids)}
}

func path(format string, ids []string) string {
	if len(ids) == 0 {
		return format
	}
	args := make([]interface{}, len(ids))
	for i := range ids {
		args[i] = url.PathEscape(ids[i])
	}
	return fmt.Sprintf(format, args...)
}
