package api

import "github.com/kod2ulz/fatzebra-gateway/client"

var (
	directDebitsEndpoint = client.Post("/direct_debits")
)

// DirectDebitRequest debits a bank account. Unlike card operations the gateway takes
// direct debit amounts in major units, so Amount is sent as a decimal string.
type DirectDebitRequest struct {
	Bsb           string `validate:"required" label:"BSB"`
	AccountName   string `validate:"required" label:"Account name"`
	AccountNumber string `validate:"required" label:"Account number"`
	Amount        string `validate:"required" label:"Amount"`
	Description   string `validate:"required" label:"Description"`
	Reference     string `validate:"required" label:"Reference"`
	Extra         client.Payload
}

func (r DirectDebitRequest) Endpoint() client.Endpoint { return directDebitsEndpoint }

func (r DirectDebitRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return nonNegative(r.Amount)
}

func (r DirectDebitRequest) Payload(customerIP string) client.Payload {
	p := client.Payload{
		"bsb":            r.Bsb,
		"account_name":   r.AccountName,
		"account_number": r.AccountNumber,
		"amount":         major(r.Amount),
		"description":    r.Description,
		"reference":      r.Reference,
		"customer_ip":    customerIP,
	}
	return withExtra(p, r.Extra)
}

type GetDirectDebitRequest struct {
	ID string `validate:"required" label:"Direct debit ID"`
}

func (r GetDirectDebitRequest) Endpoint() client.Endpoint {
	return client.Get("/direct_debits/%s", r.ID)
}

func (r GetDirectDebitRequest) Validate() error {
	return check(r)
}

func (r GetDirectDebitRequest) Payload(string) client.Payload {
	return nil
}
