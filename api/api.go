package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/kod2ulz/fatzebra-gateway/client"
	"github.com/kod2ulz/gostart/logr"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GatewayApi interface {
	PurchaseApi
	RefundApi
	CardApi
	CustomerApi
	DirectDebitApi
}

type PurchaseApi interface {
	Purchase(context.Context, PurchaseRequest) (client.Response, error)
	TokenPurchase(context.Context, TokenPurchaseRequest) (client.Response, error)
	WalletPurchase(context.Context, WalletPurchaseRequest) (client.Response, error)
	Authorization(context.Context, AuthorizationRequest) (client.Response, error)
	TokenAuthorization(context.Context, TokenAuthorizationRequest) (client.Response, error)
	Capture(context.Context, CaptureRequest) (client.Response, error)
	Void(context.Context, VoidRequest) (client.Response, error)
	GetPurchase(ctx context.Context, reference string) (client.Response, error)
}

type RefundApi interface {
	Refund(context.Context, RefundRequest) (client.Response, error)
	GetRefund(ctx context.Context, reference string) (client.Response, error)
}

type CardApi interface {
	Tokenize(context.Context, TokenizeRequest) (client.Response, error)
	GetTokenizedCard(ctx context.Context, token string) (client.Response, error)
	UpdateTokenizedCard(context.Context, UpdateTokenizedCardRequest) (client.Response, error)
}

type CustomerApi interface {
	CreateCustomer(context.Context, CreateCustomerRequest) (client.Response, error)
	CreatePlan(context.Context, CreatePlanRequest) (client.Response, error)
	CreateSubscription(context.Context, CreateSubscriptionRequest) (client.Response, error)
	CancelSubscription(ctx context.Context, id string) (client.Response, error)
	ResumeSubscription(ctx context.Context, id string) (client.Response, error)
}

type DirectDebitApi interface {
	CreateDirectDebit(context.Context, DirectDebitRequest) (client.Response, error)
	GetDirectDebit(ctx context.Context, id string) (client.Response, error)
}

var _ GatewayApi = (*gateway)(nil)

type GatewayApiOption func(*gateway)

func WithGatewayClientConfig(conf *client.GatewayConfig) GatewayApiOption {
	return func(g *gateway) {
		if g.client, g.err = client.GatewayClient(g.ctx, g.log, client.WithGatewayConfig(conf)); g.err != nil {
			g.entry().WithError(g.err).Error("failed to initialise gateway client using config")
		}
	}
}

func WithGatewayClient(c *client.Gateway) GatewayApiOption {
	return func(g *gateway) {
		g.client = c
	}
}

type gateway struct {
	client *client.Gateway
	ctx    context.Context
	log    *logr.Logger
	err    error
}

func (s *gateway) entry() *logrus.Entry {
	if s.log != nil && s.log.Entry != nil {
		return s.log.Entry
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

func Gateway(ctx context.Context, log *logr.Logger, opts ...GatewayApiOption) (out *gateway, err error) {
	out = &gateway{log: log, ctx: ctx}
	for i := range opts {
		opts[i](out)
	}
	if out.err != nil {
		return nil, errors.Wrap(out.err, "failed to initialise gateway client")
	} else if out.client == nil {
		return nil, errors.Errorf("client not initialised")
	}
	return
}

func (s *gateway) Client() *client.Gateway {
	return s.client
}

func (s *gateway) do(ctx context.Context, req client.Request) (client.Response, error) {
	return s.client.Do(callContext(ctx), req)
}

// callContext unwraps a *gin.Context into its request context, resolving the
// customer address when the middleware has not already done so.
func callContext(ctx context.Context) context.Context {
	c, ok := ctx.(*gin.Context)
	if !ok || c.Request == nil {
		return ctx
	}
	rctx := c.Request.Context()
	if _, ok = client.CustomerIPFromContext(rctx); !ok {
		rctx = client.ContextWithRequest(rctx, c.Request)
	}
	return rctx
}

func (s *gateway) Purchase(ctx context.Context, req PurchaseRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) TokenPurchase(ctx context.Context, req TokenPurchaseRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) WalletPurchase(ctx context.Context, req WalletPurchaseRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) Authorization(ctx context.Context, req AuthorizationRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) TokenAuthorization(ctx context.Context, req TokenAuthorizationRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) Capture(ctx context.Context, req CaptureRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) Void(ctx context.Context, req VoidRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) GetPurchase(ctx context.Context, reference string) (client.Response, error) {
	return s.do(ctx, GetPurchaseRequest{Reference: reference})
}

func (s *gateway) Refund(ctx context.Context, req RefundRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) GetRefund(ctx context.Context, reference string) (client.Response, error) {
	return s.do(ctx, GetRefundRequest{Reference: reference})
}

func (s *gateway) Tokenize(ctx context.Context, req TokenizeRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) GetTokenizedCard(ctx context.Context, token string) (client.Response, error) {
	return s.do(ctx, GetTokenizedCardRequest{Token: token})
}

func (s *gateway) UpdateTokenizedCard(ctx context.Context, req UpdateTokenizedCardRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) CreatePlan(ctx context.Context, req CreatePlanRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) CancelSubscription(ctx context.Context, id string) (client.Response, error) {
	return s.do(ctx, SubscriptionStatusRequest{ID: id, Active: false})
}

func (s *gateway) ResumeSubscription(ctx context.Context, id string) (client.Response, error) {
	return s.do(ctx, SubscriptionStatusRequest{ID: id, Active: true})
}

func (s *gateway) CreateDirectDebit(ctx context.Context, req DirectDebitRequest) (client.Response, error) {
	return s.do(ctx, req)
}

func (s *gateway) GetDirectDebit(ctx context.Context, id string) (client.Response, error) {
	return s.do(ctx, GetDirectDebitRequest{ID: id})
}
