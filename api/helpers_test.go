package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	. "github.com/onsi/gomega"

	"github.com/kod2ulz/fatzebra-gateway/api"
	"github.com/kod2ulz/fatzebra-gateway/client"
)

const (
	approvedPurchase = `{"successful":true,"response":{"id":"071-P-ZGXY5QS1","successful":true,"captured":true,"authorization":"1234","message":"Approved","reference":"ORD-1","amount":1000,"decimal_amount":10.0,"currency":"AUD","card_number":"512345XXXXXX2346","transaction_id":"071-P-ZGXY5QS1"},"errors":[],"test":true}`
	declinedPurchase = `{"successful":true,"response":{"id":"071-P-ZGXY5QS2","successful":false,"message":"Declined","reference":"ORD-1","amount":10051},"errors":[],"test":true}`
	gatewayFailure   = `{"successful":false,"response":null,"errors":["Reference has already been taken"],"test":true}`
)

type recorder struct {
	mu      sync.Mutex
	methods []string
	urls    []string
	bodies  []map[string]any
	reply   string
}

func (r *recorder) Do(req *http.Request) (*http.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var body map[string]any
	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		json.Unmarshal(data, &body)
	}
	r.methods = append(r.methods, req.Method)
	r.urls = append(r.urls, req.URL.String())
	r.bodies = append(r.bodies, body)
	reply := r.reply
	if reply == "" {
		reply = approvedPurchase
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(reply)),
	}, nil
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.methods)
}

func (r *recorder) last() (method, url string, body map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	Expect(r.methods).ToNot(BeEmpty())
	n := len(r.methods) - 1
	return r.methods[n], r.urls[n], r.bodies[n]
}

func newGateway(rec *recorder, opts ...client.GatewayOption) api.GatewayApi {
	opts = append([]client.GatewayOption{
		client.WithGatewayCredentials("TEST", "TEST", true),
		client.WithHTTPClient(rec),
	}, opts...)
	c, err := client.GatewayClient(context.Background(), nil, opts...)
	Expect(err).To(BeNil())
	gw, err := api.Gateway(context.Background(), nil, api.WithGatewayClient(c))
	Expect(err).To(BeNil())
	return gw
}

func sandbox(path string) string {
	return client.SandboxURL + "/v1.0" + path
}

func testCard() api.Card {
	return api.Card{
		CardHolder: "Jim Smith",
		CardNumber: "5123456789012346",
		CardExpiry: "05/2030",
		Cvv:        "123",
	}
}
