package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"francoggm/emipay-gateway-go/internal/apperr"
	"francoggm/emipay-gateway-go/internal/logger"
	"francoggm/emipay-gateway-go/internal/models"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

// Client talks to the loan ledger service. All failures collapse into the
// apperr sentinels so callers never branch on transport details.
type Client struct {
	baseURL string
	timeout time.Duration
	client  *fasthttp.Client
	log     *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		client:  &fasthttp.Client{},
		log:     log,
	}
}

// ListLoans returns every loan of the current session. Ordering is whatever
// the ledger sends back.
func (c *Client) ListLoans(ctx context.Context) ([]models.LoanAccount, error) {
	body, err := c.do(http.MethodGet, "/customers", nil)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}

	var loans []models.LoanAccount
	if err := sonic.Unmarshal(body, &loans); err != nil {
		return nil, fmt.Errorf("list loans: %w: %v", apperr.ErrMalformedResponse, err)
	}

	return loans, nil
}

// GetLoan returns the current state of a single account. The ledger has no
// single-account endpoint, so the full listing is fetched and filtered.
func (c *Client) GetLoan(ctx context.Context, accountNumber string) (models.LoanAccount, error) {
	loans, err := c.ListLoans(ctx)
	if err != nil {
		return models.LoanAccount{}, err
	}

	for _, loan := range loans {
		if loan.AccountNumber == accountNumber {
			return loan, nil
		}
	}

	return models.LoanAccount{}, fmt.Errorf("%w: %s", apperr.ErrAccountNotFound, accountNumber)
}

// SubmitPayment sends the payment instruction. The call generates no
// idempotency key, so a failed call must never be replayed blindly: the
// ledger may already have accepted it.
func (c *Client) SubmitPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) (models.PaymentOutcome, error) {
	payload, err := sonic.Marshal(models.PaymentRequest{
		AccountNumber: accountNumber,
		Amount:        amount.InexactFloat64(),
	})
	if err != nil {
		return models.PaymentOutcome{}, fmt.Errorf("submit payment: marshal request: %w", err)
	}

	body, err := c.do(http.MethodPost, "/payments", payload)
	if err != nil {
		return models.PaymentOutcome{}, fmt.Errorf("submit payment: %w", err)
	}

	var resp models.PaymentResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		return models.PaymentOutcome{}, fmt.Errorf("submit payment: %w: %v", apperr.ErrMalformedResponse, err)
	}

	return resp.Outcome(), nil
}

// Ping probes ledger reachability without decoding the response.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.do(http.MethodGet, "/customers", nil); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

func (c *Client) do(method, path string, payload []byte) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)

	if payload != nil {
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrLedgerUnreachable, err)
	}

	statusCode := resp.StatusCode()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: status code %d", apperr.ErrLedgerUnreachable, statusCode)
	}

	// resp.Body() is pooled memory, copy before releasing
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	return body, nil
}
