package api

import "github.com/kod2ulz/fatzebra-gateway/client"

var (
	customersEndpoint = client.Post("/customers")
)

// CreateCustomerRequest registers a customer and card for recurring billing.
type CreateCustomerRequest struct {
	FirstName string `validate:"required" label:"First name"`
	LastName  string `validate:"required" label:"Last name"`
	Email     string `validate:"required" label:"Email"`
	Reference string `validate:"required" label:"Reference"`
	Card
	Extra client.Payload
}

func (r CreateCustomerRequest) Endpoint() client.Endpoint { return customersEndpoint }

func (r CreateCustomerRequest) Validate() error {
	return check(r)
}

func (r CreateCustomerRequest) Payload(string) client.Payload {
	p := client.Payload{
		"first_name": r.FirstName,
		"last_name":  r.LastName,
		"reference":  r.Reference,
		"email":      r.Email,
		"card": client.Payload{
			"card_holder": r.CardHolder,
			"card_number": r.CardNumber,
			"expiry_date": r.CardExpiry,
			"cvv":         r.Cvv,
		},
	}
	return withExtra(p, r.Extra)
}
