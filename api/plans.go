package api

import "github.com/kod2ulz/fatzebra-gateway/client"

var (
	plansEndpoint = client.Post("/plans")
)

type CreatePlanRequest struct {
	Name        string `validate:"required" label:"Plan Name"`
	Amount      string `validate:"required" label:"Amount"`
	Reference   string `validate:"required" label:"Reference"`
	Description string `validate:"required" label:"Description"`
	Extra       client.Payload
}

func (r CreatePlanRequest) Endpoint() client.Endpoint { return plansEndpoint }

func (r CreatePlanRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	}
	return positive(r.Amount)
}

func (r CreatePlanRequest) Payload(string) client.Payload {
	p := client.Payload{
		"name":        r.Name,
		"amount":      minor(r.Amount),
		"reference":   r.Reference,
		"description": r.Description,
	}
	return withExtra(p, r.Extra)
}
