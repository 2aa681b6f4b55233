package api

import (
	"net/url"

	"github.com/kod2ulz/fatzebra-gateway/client"
)

var (
	purchasesEndpoint = client.Post("/purchases")
)

// Card holds the card details shared by purchases, authorizations and tokenization.
type Card struct {
	CardHolder string `validate:"required" label:"Card Holder"`
	CardNumber string `validate:"required" label:"Card Number"`
	// CardExpiry is in mm/yyyy format.
	CardExpiry string `validate:"required" label:"Expiry"`
	Cvv        string `validate:"required" label:"CVV"`
}

func (c Card) payload() client.Payload {
	return client.Payload{
		"card_holder": c.CardHolder,
		"card_number": c.CardNumber,
		"card_expiry": c.CardExpiry,
		"cvv":         c.Cvv,
	}
}

type PurchaseRequest struct {
	Amount    string `validate:"required" label:"Amount"`
	Reference string `validate:"required" label:"Reference"`
	Card
	// Currency defaults to AUD.
	Currency string
	Fraud    client.Payload
	Extra    client.Payload
}

func (r PurchaseRequest) Endpoint() client.Endpoint { return purchasesEndpoint }

func (r PurchaseRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r PurchaseRequest) Payload(customerIP string) client.Payload {
	p := r.Card.payload().
		Set("reference", r.Reference).
		Set("amount", minor(r.Amount)).
		Set("currency", currency(r.Currency)).
		Set("customer_ip", customerIP).
		SetIf(r.Fraud != nil, "fraud", r.Fraud)
	return withExtra(p, r.Extra)
}

type TokenPurchaseRequest struct {
	Amount    string `validate:"required" label:"Amount"`
	Reference string `validate:"required" label:"Reference"`
	CardToken string `validate:"required" label:"Card token"`
	// Cvv is optional but recommended.
	Cvv      string
	Currency string
	Extra    client.Payload
}

func (r TokenPurchaseRequest) Endpoint() client.Endpoint { return purchasesEndpoint }

func (r TokenPurchaseRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r TokenPurchaseRequest) Payload(customerIP string) client.Payload {
	p := client.Payload{
		"customer_ip": customerIP,
		"card_token":  r.CardToken,
		"amount":      minor(r.Amount),
		"reference":   r.Reference,
		"currency":    currency(r.Currency),
	}
	return withExtra(p.SetIf(r.Cvv != "", "cvv", r.Cvv), r.Extra)
}

type WalletPurchaseRequest struct {
	Amount    string         `validate:"required" label:"Amount"`
	Reference string         `validate:"required" label:"Reference"`
	Wallet    client.Payload `validate:"required,min=1" label:"Wallet"`
	Currency  string
	Extra     client.Payload
}

func (r WalletPurchaseRequest) Endpoint() client.Endpoint { return purchasesEndpoint }

func (r WalletPurchaseRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r WalletPurchaseRequest) Payload(customerIP string) client.Payload {
	p := client.Payload{
		"amount":      minor(r.Amount),
		"reference":   r.Reference,
		"customer_ip": customerIP,
		"currency":    currency(r.Currency),
		"wallet":      r.Wallet.Clone(),
	}
	return withExtra(p, r.Extra)
}

// AuthorizationRequest reserves funds on a card without capturing them.
type AuthorizationRequest struct {
	Amount    string `validate:"required" label:"Amount"`
	Reference string `validate:"required" label:"Reference"`
	Card
	Currency string
	Extra    client.Payload
}

func (r AuthorizationRequest) Endpoint() client.Endpoint { return purchasesEndpoint }

func (r AuthorizationRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r AuthorizationRequest) Payload(customerIP string) client.Payload {
	p := r.Card.payload().
		Set("customer_ip", customerIP).
		Set("reference", r.Reference).
		Set("amount", minor(r.Amount)).
		Set("currency", currency(r.Currency)).
		Set("capture", false)
	return withExtra(p, r.Extra)
}

type TokenAuthorizationRequest struct {
	Amount    string `validate:"required" label:"Amount"`
	Reference string `validate:"required" label:"Reference"`
	// CardToken may also be a card alias.
	CardToken string `validate:"required" label:"Card token"`
	Currency  string
	Extra     client.Payload
}

func (r TokenAuthorizationRequest) Endpoint() client.Endpoint { return purchasesEndpoint }

func (r TokenAuthorizationRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r TokenAuthorizationRequest) Payload(customerIP string) client.Payload {
	p := client.Payload{
		"customer_ip": customerIP,
		"card_token":  r.CardToken,
		"reference":   r.Reference,
		"amount":      minor(r.Amount),
		"currency":    currency(r.Currency),
		"capture":     false,
	}
	return withExtra(p, r.Extra)
}

// CaptureRequest collects funds from an authorization (e.g. xxxx-P-yyyyyyyy).
type CaptureRequest struct {
	TransactionID string `validate:"required" label:"Transaction ID"`
	Amount        string `validate:"required" label:"Amount"`
	Extra         client.Payload
}

func (r CaptureRequest) Endpoint() client.Endpoint {
	return client.Post("/purchases/%s/capture", r.TransactionID)
}

func (r CaptureRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r CaptureRequest) Payload(string) client.Payload {
	return withExtra(client.Payload{"amount": minor(r.Amount)}, r.Extra)
}

// VoidRequest releases an authorization or voids a purchase not yet settled.
type VoidRequest struct {
	TransactionID string `validate:"required" label:"Transaction ID"`
	Extra         client.Payload
}

func (r VoidRequest) Endpoint() client.Endpoint {
	return client.Endpoint{Method: client.MethodPost, Uri: "/purchases/void?id=" + url.QueryEscape(r.TransactionID)}
}

func (r VoidRequest) Validate() error {
	return check(r)
}

func (r VoidRequest) Payload(string) client.Payload {
	return withExtra(client.Payload{}, r.Extra)
}

// GetPurchaseRequest fetches a purchase by its ID or reference. After a Timeout this
// is how to find out whether the purchase went through before resubmitting it.
type GetPurchaseRequest struct {
	Reference string `validate:"required" label:"Reference"`
}

func (r GetPurchaseRequest) Endpoint() client.Endpoint {
	return client.Get("/purchases/%s", r.Reference)
}

func (r GetPurchaseRequest) Validate() error {
	return check(r)
}

func (r GetPurchaseRequest) Payload(string) client.Payload {
	return nil
}
