package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrLedgerUnreachable = errors.New("ledger unreachable")
	ErrMalformedResponse = errors.New("malformed ledger response")
	ErrAccountNotFound   = errors.New("account not found")
)

func Kind(err error) string {
	switch {
	case err == nil:
		return ""

	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"

	case errors.Is(err, ErrLedgerUnreachable):
		return "ledger_unreachable"

	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"

	default:
		return "internal"
	}
}

func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound

	case errors.Is(err, ErrLedgerUnreachable),
		errors.Is(err, ErrMalformedResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
