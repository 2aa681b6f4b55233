package api

import (
	"time"

	"github.com/kod2ulz/fatzebra-gateway/client"
)

const dateLayout = "2006-01-02"

var (
	subscriptionsEndpoint = client.Post("/subscriptions")
)

type Frequency string

const (
	Daily       Frequency = "Daily"
	Weekly      Frequency = "Weekly"
	Fortnightly Frequency = "Fortnightly"
	Monthly     Frequency = "Monthly"
	Quarterly   Frequency = "Quarterly"
	BiAnnually  Frequency = "Bi-Annually"
	Annually    Frequency = "Annually"
)

var Frequencies = []Frequency{Daily, Weekly, Fortnightly, Monthly, Quarterly, BiAnnually, Annually}

func (f Frequency) Valid() bool {
	for i := range Frequencies {
		if Frequencies[i] == f {
			return true
		}
	}
	return false
}

type CreateSubscriptionRequest struct {
	// Customer and Plan take either the gateway ID or your reference.
	Customer  string    `validate:"required" label:"Customer ID or Reference"`
	Plan      string    `validate:"required" label:"Plan ID or Reference"`
	Frequency Frequency `validate:"required" label:"Frequency"`
	StartDate time.Time
	EndDate   *time.Time
	Reference string `validate:"required" label:"Reference"`
	// Inactive creates the subscription paused.
	Inactive bool
	Extra    client.Payload
}

func (r CreateSubscriptionRequest) Endpoint() client.Endpoint { return subscriptionsEndpoint }

func (r CreateSubscriptionRequest) Validate() error {
	if err := check(r); err != nil {
		return err
	} else if !r.Frequency.Valid() {
		return client.InvalidArgument("Invalid Frequency, Acceptable values are: Daily, Weekly, Fortnightly, Monthly, Quarterly, Bi-Annually or Annually")
	} else if r.StartDate.IsZero() {
		return client.InvalidArgument("Invalid start date - must be a timestamp")
	} else if r.EndDate != nil && r.EndDate.IsZero() {
		return client.InvalidArgument("Invalid end date - must be a timestamp")
	}
	return nil
}

func (r CreateSubscriptionRequest) Payload(string) client.Payload {
	var endDate any
	if r.EndDate != nil {
		endDate = r.EndDate.Format(dateLayout)
	}
	p := client.Payload{
		"customer":   r.Customer,
		"plan":       r.Plan,
		"frequency":  string(r.Frequency),
		"start_date": r.StartDate.Format(dateLayout),
		"end_date":   endDate,
		"reference":  r.Reference,
		"is_active":  !r.Inactive,
	}
	return withExtra(p, r.Extra)
}

// SubscriptionStatusRequest pauses or resumes a subscription.
type SubscriptionStatusRequest struct {
	ID     string `validate:"required" label:"Subscription ID"`
	Active bool
}

func (r SubscriptionStatusRequest) Endpoint() client.Endpoint {
	return client.Put("/subscriptions/%s", r.ID)
}

func (r SubscriptionStatusRequest) Validate() error {
	return check(r)
}

func (r SubscriptionStatusRequest) Payload(string) client.Payload {
	return client.Payload{"is_active": r.Active}
}
