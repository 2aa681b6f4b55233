package api

import (
	"github.com/kod2ulz/fatzebra-gateway/client"
	"github.com/shopspring/decimal"
)

// Decode reads the inner response object of res into T.
func Decode[T any](res client.Response) (out T, err error) {
	err = res.Decode(&out)
	return
}

type Purchase struct {
	ID              string          `json:"id"`
	Successful      bool            `json:"successful"`
	Captured        bool            `json:"captured"`
	Authorization   string          `json:"authorization"`
	Message         string          `json:"message"`
	Reference       string          `json:"reference"`
	Amount          int64           `json:"amount"`
	DecimalAmount   decimal.Decimal `json:"decimal_amount"`
	Currency        string          `json:"currency"`
	CardHolder      string          `json:"card_holder"`
	CardNumber      string          `json:"card_number"`
	CardToken       string          `json:"card_token"`
	TransactionID   string          `json:"transaction_id"`
	SettlementDate  string          `json:"settlement_date"`
	TransactionDate string          `json:"transaction_date"`
	ResponseCode    string          `json:"response_code"`
	RefundedAmount  int64           `json:"refunded_amount,omitempty"`
	Metadata        map[string]any  `json:"metadata,omitempty"`
}

type Refund struct {
	ID                    string `json:"id"`
	Successful            bool   `json:"successful"`
	Message               string `json:"message"`
	Reference             string `json:"reference"`
	Amount                int64  `json:"amount"`
	TransactionID         string `json:"transaction_id"`
	OriginalTransactionID string `json:"original_transaction_id"`
}

type CreditCard struct {
	Token      string `json:"token"`
	CardHolder string `json:"card_holder"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardType   string `json:"card_type"`
	Alias      string `json:"alias"`
}

type DirectDebit struct {
	ID            string          `json:"id"`
	Bsb           string          `json:"bsb"`
	AccountName   string          `json:"account_name"`
	AccountNumber string          `json:"account_number"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	Status        string          `json:"status"`
}
