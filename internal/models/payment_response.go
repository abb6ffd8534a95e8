package models

import "github.com/shopspring/decimal"

// PaymentResponse is the ledger's POST /payments response envelope.
type PaymentResponse struct {
	Msg     string `json:"msg"`
	Payment struct {
		PaymentID     int64           `json:"payment_id"`
		CustomerID    int64           `json:"customer_id"`
		PaymentAmount decimal.Decimal `json:"payment_amount"`
		Status        string          `json:"status"`
	} `json:"payment"`
	NewBalance *decimal.Decimal `json:"new_balance,omitempty"`
}

// Outcome flattens the envelope into the client-side result type.
func (r *PaymentResponse) Outcome() PaymentOutcome {
	return PaymentOutcome{
		PaymentID:  r.Payment.PaymentID,
		CustomerID: r.Payment.CustomerID,
		Amount:     r.Payment.PaymentAmount,
		Status:     r.Payment.Status,
		Message:    r.Msg,
		NewBalance: r.NewBalance,
	}
}
