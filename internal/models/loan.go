package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanAccount mirrors one entry of the ledger's GET /customers response.
// The ledger serializes its decimals as strings; issue_date arrives in an
// unspecified format and is kept opaque so a decode can never fail on it.
type LoanAccount struct {
	ID            int64           `json:"id"`
	AccountNumber string          `json:"account_number"`
	IssueDate     string          `json:"issue_date"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	TenureMonths  int             `json:"tenure"`
	EMIDue        decimal.Decimal `json:"emi_due"`
}

// LoanListing is a fetched set of loans stamped with when it was fetched,
// so stale data can be recognized as such.
type LoanListing struct {
	Loans     []LoanAccount `json:"loans"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// PaymentRequest is the POST /payments body. Unlike the decimals the
// ledger returns, it wants the amount as a JSON number.
type PaymentRequest struct {
	AccountNumber string  `json:"account_number"`
	Amount        float64 `json:"amount"`
}

// PaymentOutcome is the terminal result of one submitted payment.
type PaymentOutcome struct {
	PaymentID  int64            `json:"payment_id"`
	CustomerID int64            `json:"customer_id"`
	Amount     decimal.Decimal  `json:"payment_amount"`
	Status     string           `json:"status"`
	Message    string           `json:"msg,omitempty"`
	NewBalance *decimal.Decimal `json:"new_balance,omitempty"`
}
