package api

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/kod2ulz/fatzebra-gateway/client"
	"github.com/kod2ulz/fatzebra-gateway/money"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

// check runs the struct tags of r and reports the first failure as InvalidArgument.
func check(r any) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return client.InvalidArgument("invalid request: %v", err)
	}
	switch fe := fields[0]; fe.Tag() {
	case "required", "min":
		return client.InvalidArgument("%s is a required field.", fe.Field())
	default:
		return client.InvalidArgument("%s is invalid.", fe.Field())
	}
}

func parseAmount(value string) (out money.Amount, err error) {
	if out, err = money.Normalize(value); err != nil {
		return out, client.InvalidArgument("Amount is invalid - %v", err)
	}
	return
}

// nonNegative is the rule for purchases, authorizations and captures.
func nonNegative(value string) error {
	amount, err := parseAmount(value)
	if err != nil {
		return err
	} else if amount.Decimal.IsNegative() {
		return client.InvalidArgument("Amount is invalid - must not be negative")
	}
	return nil
}

// positive requires the whole part of the amount to be at least 1.
func positive(value string) error {
	amount, err := parseAmount(value)
	if err != nil {
		return err
	} else if amount.Whole() < 1 {
		return client.InvalidArgument("Amount is invalid - must be a positive value")
	}
	return nil
}

// minor is only called after validation, so value always parses.
func minor(value string) int64 {
	amount, _ := money.Normalize(value)
	return amount.Minor
}

func major(value string) string {
	amount, _ := money.Normalize(value)
	return amount.Decimal.String()
}

func currency(value string) string {
	if value == "" {
		return client.DefaultCurrency
	}
	return value
}

func withExtra(p, extra client.Payload) client.Payload {
	if len(extra) == 0 {
		return p
	}
	return client.Merge(p, extra)
}
