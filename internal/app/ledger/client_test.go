package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"francoggm/emipay-gateway-go/internal/apperr"
	"francoggm/emipay-gateway-go/internal/logger"

	"github.com/shopspring/decimal"
)

const customersBody = `[
	{"id": 1, "account_number": "ACC100", "issue_date": "2024-01-15", "interest_rate": "8.5", "tenure": 24, "emi_due": "75.00"},
	{"id": 2, "account_number": "ACC200", "issue_date": "2023-06-01", "interest_rate": "10.25", "tenure": 36, "emi_due": "120.50"}
]`

func newTestClient(url string) *Client {
	return NewClient(url, 2*time.Second, logger.NewNop())
}

func TestListLoans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers" || r.Method != http.MethodGet {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, customersBody)
	}))
	defer srv.Close()

	loans, err := newTestClient(srv.URL).ListLoans(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(loans) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(loans))
	}
	if loans[0].AccountNumber != "ACC100" {
		t.Errorf("expected ACC100, got %s", loans[0].AccountNumber)
	}
	if !loans[0].EMIDue.Equal(decimal.RequireFromString("75.00")) {
		t.Errorf("expected emi due 75.00, got %s", loans[0].EMIDue)
	}
	if loans[1].TenureMonths != 36 {
		t.Errorf("expected tenure 36, got %d", loans[1].TenureMonths)
	}
}

func TestGetLoan_FiltersListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, customersBody)
	}))
	defer srv.Close()

	loan, err := newTestClient(srv.URL).GetLoan(context.Background(), "ACC200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loan.AccountNumber != "ACC200" {
		t.Errorf("expected ACC200, got %s", loan.AccountNumber)
	}
	if !loan.EMIDue.Equal(decimal.RequireFromString("120.50")) {
		t.Errorf("expected emi due 120.50, got %s", loan.EMIDue)
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, customersBody)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetLoan(context.Background(), "ACC999")
	if !errors.Is(err, apperr.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListLoans_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"oops": true}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListLoans(context.Background())
	if !errors.Is(err, apperr.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestListLoans_LedgerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).ListLoans(context.Background())
	if !errors.Is(err, apperr.ErrLedgerUnreachable) {
		t.Fatalf("expected ErrLedgerUnreachable, got %v", err)
	}
}

func TestListLoans_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ListLoans(context.Background())
	if !errors.Is(err, apperr.ErrLedgerUnreachable) {
		t.Fatalf("expected ErrLedgerUnreachable, got %v", err)
	}
}

func TestSubmitPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/payments" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req struct {
			AccountNumber string  `json:"account_number"`
			Amount        float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.AccountNumber != "ACC100" {
			t.Errorf("expected account ACC100, got %s", req.AccountNumber)
		}
		if req.Amount != 50 {
			t.Errorf("expected numeric amount 50, got %v", req.Amount)
		}

		io.WriteString(w, `{
			"msg": "Payment successful",
			"payment": {"payment_id": 7, "customer_id": 1, "payment_amount": "50.00", "status": "completed"},
			"new_balance": 25
		}`)
	}))
	defer srv.Close()

	outcome, err := newTestClient(srv.URL).SubmitPayment(context.Background(), "ACC100", decimal.RequireFromString("50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.PaymentID != 7 {
		t.Errorf("expected payment id 7, got %d", outcome.PaymentID)
	}
	if outcome.Status != "completed" {
		t.Errorf("expected status completed, got %s", outcome.Status)
	}
	if !outcome.Amount.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected amount 50.00, got %s", outcome.Amount)
	}
	if outcome.NewBalance == nil || !outcome.NewBalance.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected new balance 25, got %v", outcome.NewBalance)
	}
	if outcome.Message != "Payment successful" {
		t.Errorf("unexpected message %q", outcome.Message)
	}
}

func TestSubmitPayment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).SubmitPayment(context.Background(), "ACC100", decimal.NewFromInt(50))
	if !errors.Is(err, apperr.ErrLedgerUnreachable) {
		t.Fatalf("expected ErrLedgerUnreachable, got %v", err)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, customersBody)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	srv.Close()
	if err := newTestClient(srv.URL).Ping(context.Background()); !errors.Is(err, apperr.ErrLedgerUnreachable) {
		t.Fatalf("expected ErrLedgerUnreachable, got %v", err)
	}
}
