package client_test

import (
	"context"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kod2ulz/fatzebra-gateway/client"
)

var _ = Describe("Client IP", func() {

	Context("ResolveIP", func() {

		It("takes the leftmost forwarded address", func() {
			r := httptest.NewRequest("GET", "/", nil)
			r.Header.Set(client.HeaderForwardedFor, "203.0.113.5, 10.0.0.1")
			Expect(client.ResolveIP(r)).To(Equal("203.0.113.5"))
		})

		It("falls back to the peer address", func() {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = "198.51.100.7:53211"
			Expect(client.ResolveIP(r)).To(Equal("198.51.100.7"))
		})

		It("keeps a peer address without a port", func() {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = "198.51.100.7"
			Expect(client.ResolveIP(r)).To(Equal("198.51.100.7"))
		})

		It("returns the sentinel without a request", func() {
			Expect(client.ResolveIP(nil)).To(Equal(client.UnknownIP))
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = ""
			Expect(client.ResolveIP(r)).To(Equal(client.UnknownIP))
		})
	})

	Context("Gateway", func() {

		var ctx context.Context
		var doer *stubDoer

		BeforeEach(func() {
			ctx = context.Background()
			doer = &stubDoer{}
		})

		It("caches the address resolved from the construction request", func() {
			source := httptest.NewRequest("GET", "/", nil)
			source.Header.Set(client.HeaderForwardedFor, "203.0.113.5, 10.0.0.1")
			gw, err := client.GatewayClient(ctx, nil,
				client.WithGatewayCredentials("TEST", "TEST", true),
				client.WithHTTPClient(doer), client.WithRequest(source))
			Expect(err).To(BeNil())
			Expect(gw.CustomerIP(ctx)).To(Equal("203.0.113.5"))

			source.Header.Set(client.HeaderForwardedFor, "192.0.2.1")
			Expect(gw.CustomerIP(ctx)).To(Equal("203.0.113.5"))
		})

		It("prefers the address carried by the call context", func() {
			gw, err := client.GatewayClient(ctx, nil,
				client.WithGatewayCredentials("TEST", "TEST", true), client.WithHTTPClient(doer))
			Expect(err).To(BeNil())
			Expect(gw.CustomerIP(ctx)).To(Equal(client.UnknownIP))
			Expect(gw.CustomerIP(client.ContextWithCustomerIP(ctx, "192.0.2.10"))).To(Equal("192.0.2.10"))
		})

		It("always uses an explicit override", func() {
			gw, err := client.GatewayClient(ctx, nil,
				client.WithGatewayCredentials("TEST", "TEST", true),
				client.WithHTTPClient(doer), client.WithClientIP("192.0.2.99"))
			Expect(err).To(BeNil())
			Expect(gw.CustomerIP(client.ContextWithCustomerIP(ctx, "192.0.2.10"))).To(Equal("192.0.2.99"))

			gw.SetClientIP("192.0.2.100")
			Expect(gw.CustomerIP(ctx)).To(Equal("192.0.2.100"))
			Expect(gw.Config().ClientIP).To(Equal("192.0.2.100"))
		})
	})
})
