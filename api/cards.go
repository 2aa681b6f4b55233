package api

import "github.com/kod2ulz/fatzebra-gateway/client"

var (
	creditCardsEndpoint = client.Post("/credit_cards")
)

type TokenizeRequest struct {
	Card
	Extra client.Payload
}

func (r TokenizeRequest) Endpoint() client.Endpoint { return creditCardsEndpoint }

func (r TokenizeRequest) Validate() error {
	return check(r)
}

func (r TokenizeRequest) Payload(customerIP string) client.Payload {
	return withExtra(r.Card.payload().Set("customer_ip", customerIP), r.Extra)
}

type GetTokenizedCardRequest struct {
	Token string `validate:"required" label:"Card token"`
}

func (r GetTokenizedCardRequest) Endpoint() client.Endpoint {
	return client.Get("/credit_cards/%s", r.Token)
}

func (r GetTokenizedCardRequest) Validate() error {
	return check(r)
}

func (r GetTokenizedCardRequest) Payload(string) client.Payload {
	return nil
}

// UpdateTokenizedCardRequest changes the expiry and/or alias of a stored card.
type UpdateTokenizedCardRequest struct {
	Token      string `validate:"required" label:"Card token"`
	CardExpiry string
	Alias      string
	Extra      client.Payload
}

func (r UpdateTokenizedCardRequest) Endpoint() client.Endpoint {
	return client.Put("/credit_cards/%s", r.Token)
}

func (r UpdateTokenizedCardRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	} else if r.CardExpiry == "" && r.Alias == "" {
		return client.InvalidArgument("Expiry or Alias is a required field.")
	}
	return nil
}

func (r UpdateTokenizedCardRequest) Payload(string) client.Payload {
	p := client.Payload{}.
		SetIf(r.CardExpiry != "", "card_expiry", r.CardExpiry).
		SetIf(r.Alias != "", "alias", r.Alias)
	return withExtra(p, r.Extra)
}
