package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"francoggm/emipay-gateway-go/internal/apperr"
	"francoggm/emipay-gateway-go/internal/logger"
	"francoggm/emipay-gateway-go/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateIdle                 State = "idle"
	StateValidating           State = "validating"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateSubmitting           State = "submitting"
	StateSucceeded            State = "succeeded"
	StateFailed               State = "failed"
)

type FailureReason string

const (
	ReasonInvalidInput            FailureReason = "invalid_input"
	ReasonUnknownAccount          FailureReason = "unknown_account"
	ReasonAmountExceedsDue        FailureReason = "amount_exceeds_due"
	ReasonVerificationUnavailable FailureReason = "verification_unavailable"
	ReasonSubmissionFailed        FailureReason = "submission_failed"
)

var (
	ErrAttemptInProgress    = errors.New("a payment attempt is already in progress")
	ErrNoPendingAttempt     = errors.New("no attempt is awaiting confirmation")
	ErrNothingToAcknowledge = errors.New("no finished attempt to acknowledge")
)

type LedgerClient interface {
	GetLoan(ctx context.Context, accountNumber string) (models.LoanAccount, error)
	SubmitPayment(ctx context.Context, accountNumber string, amount decimal.Decimal) (models.PaymentOutcome, error)
}

type Invalidator interface {
	Invalidate()
}

// Attempt is one end-to-end pass through validate, confirm, submit. It is
// discarded when the attempt is acknowledged or cancelled.
type Attempt struct {
	ID              uuid.UUID       `json:"id"`
	AccountNumber   string          `json:"account_number"`
	RequestedAmount decimal.Decimal `json:"requested_amount"`
	DueAtValidation decimal.Decimal `json:"due_at_validation"`
	StartedAt       time.Time       `json:"started_at"`
}

// Snapshot is the externally visible machine state. Presenters render it,
// the machine never knows about rendering.
type Snapshot struct {
	State   State                  `json:"state"`
	Attempt *Attempt               `json:"attempt,omitempty"`
	Reason  FailureReason          `json:"reason,omitempty"`
	Message string                 `json:"message,omitempty"`
	Outcome *models.PaymentOutcome `json:"outcome,omitempty"`
}

// Machine drives a single payment attempt at a time. A submit while an
// attempt is underway is rejected, never queued. The due amount is always
// re-fetched from the ledger at validation time; any listing the directory
// holds is ignored here so a stale cache can never pass validation.
type Machine struct {
	ledger    LedgerClient
	directory Invalidator
	log       *logger.Logger

	mu      sync.Mutex
	state   State
	attempt *Attempt
	reason  FailureReason
	message string
	outcome *models.PaymentOutcome
}

func NewMachine(ledger LedgerClient, directory Invalidator, log *logger.Logger) *Machine {
	return &Machine{
		ledger:    ledger,
		directory: directory,
		log:       log,
		state:     StateIdle,
	}
}

// Submit starts a fresh attempt: local input validation, then verification
// of the requested amount against the freshly fetched due. On success the
// machine parks in StateAwaitingConfirmation until Confirm or Cancel.
// Workflow failures land in StateFailed and are reported through the
// snapshot, not the error; the error is only non-nil when the submit event
// itself is rejected because an attempt is already underway.
func (m *Machine) Submit(ctx context.Context, accountNumber, amount string) (Snapshot, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	amount = strings.TrimSpace(amount)

	m.mu.Lock()
	if m.state != StateIdle {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, ErrAttemptInProgress
	}

	att := &Attempt{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		StartedAt:     time.Now().UTC(),
	}
	m.state = StateValidating
	m.attempt = att
	m.reason = ""
	m.message = ""
	m.outcome = nil

	if accountNumber == "" || amount == "" {
		snap := m.failLocked(ReasonInvalidInput, "please fill all fields")
		m.mu.Unlock()
		return snap, nil
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil || !amt.IsPositive() {
		snap := m.failLocked(ReasonInvalidInput, "please enter a valid positive amount")
		m.mu.Unlock()
		return snap, nil
	}
	att.RequestedAmount = amt
	m.mu.Unlock()

	loan, err := m.ledger.GetLoan(ctx, accountNumber)

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case errors.Is(err, apperr.ErrAccountNotFound):
		return m.failLocked(ReasonUnknownAccount, "the account number you entered does not exist"), nil
	case err != nil:
		m.log.Warn("due verification failed", "account", accountNumber, "err", err)
		return m.failLocked(ReasonVerificationUnavailable, "could not verify account details, please try again"), nil
	case amt.GreaterThan(loan.EMIDue):
		return m.failLocked(ReasonAmountExceedsDue, fmt.Sprintf("you cannot pay more than the EMI due amount ($%s)", loan.EMIDue)), nil
	}

	att.DueAtValidation = loan.EMIDue
	m.state = StateAwaitingConfirmation

	return m.snapshotLocked(), nil
}

// Confirm submits the confirmed attempt to the ledger. Once submitting, the
// machine waits for the call to resolve; there is no cancellation and no
// automatic retry, because a failed call may still have been accepted
// server-side.
func (m *Machine) Confirm(ctx context.Context) (Snapshot, error) {
	m.mu.Lock()
	if m.state != StateAwaitingConfirmation {
		snap := m.snapshotLocked()
		m.mu.Unlock()
		return snap, ErrNoPendingAttempt
	}
	m.state = StateSubmitting
	att := m.attempt
	m.mu.Unlock()

	outcome, err := m.ledger.SubmitPayment(ctx, att.AccountNumber, att.RequestedAmount)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.log.Warn("payment submission failed", "account", att.AccountNumber, "amount", att.RequestedAmount, "err", err)
		return m.failLocked(ReasonSubmissionFailed, "payment failed, please try again"), nil
	}

	m.state = StateSucceeded
	m.outcome = &outcome
	m.log.Info("payment submitted",
		"account", att.AccountNumber,
		"amount", att.RequestedAmount,
		"payment_id", outcome.PaymentID,
		"status", outcome.Status,
	)

	return m.snapshotLocked(), nil
}

// Cancel discards an attempt awaiting confirmation. Cancelling when the
// machine is already idle is a no-op, so repeated cancels are harmless.
func (m *Machine) Cancel() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateIdle:
		return m.snapshotLocked(), nil
	case StateAwaitingConfirmation:
		m.resetLocked()
		return m.snapshotLocked(), nil
	default:
		return m.snapshotLocked(), ErrNoPendingAttempt
	}
}

// Acknowledge dismisses a terminal attempt and returns the machine to idle.
// After a successful payment the directory listing is invalidated so the
// next view reflects the new due amount.
func (m *Machine) Acknowledge() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateSucceeded:
		m.resetLocked()
		if m.directory != nil {
			m.directory.Invalidate()
		}
		return m.snapshotLocked(), nil
	case StateFailed:
		m.resetLocked()
		return m.snapshotLocked(), nil
	default:
		return m.snapshotLocked(), ErrNothingToAcknowledge
	}
}

// Current reports the machine state without transitioning.
func (m *Machine) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.snapshotLocked()
}

func (m *Machine) failLocked(reason FailureReason, message string) Snapshot {
	m.state = StateFailed
	m.reason = reason
	m.message = message

	return m.snapshotLocked()
}

func (m *Machine) resetLocked() {
	m.state = StateIdle
	m.attempt = nil
	m.reason = ""
	m.message = ""
	m.outcome = nil
}

func (m *Machine) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:   m.state,
		Reason:  m.reason,
		Message: m.message,
		Outcome: m.outcome,
	}

	if m.attempt != nil {
		att := *m.attempt
		snap.Attempt = &att
	}

	return snap
}
