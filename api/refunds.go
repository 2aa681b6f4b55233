package api

import "github.com/kod2ulz/fatzebra-gateway/client"

var (
	refundsEndpoint = client.Post("/refunds")
)

// RefundRequest refunds part or all of an earlier purchase. The whole part of the
// amount must be at least 1.
type RefundRequest struct {
	TransactionID string `validate:"required" label:"Transaction ID"`
	Amount        string `validate:"required" label:"Amount"`
	Reference     string `validate:"required" label:"Reference"`
	Extra         client.Payload
}

func (r RefundRequest) Endpoint() client.Endpoint { return refundsEndpoint }

func (r RefundRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return positive(r.Amount)
}

func (r RefundRequest) Payload(string) client.Payload {
	p := client.Payload{
		"transaction_id": r.TransactionID,
		"amount":         minor(r.Amount),
		"reference":      r.Reference,
	}
	return withExtra(p, r.Extra)
}

type GetRefundRequest struct {
	Reference string `validate:"required" label:"Reference"`
}

func (r GetRefundRequest) Endpoint() client.Endpoint {
	return client.Get("/refunds/%s", r.Reference)
}

func (r GetRefundRequest) Validate() error {
	return check(r)
}

func (r GetRefundRequest) Payload(string) client.Payload {
	return nil
}
