package httpapi

import (
	"errors"
	"net/http"

	"github.com/bnema/remote-assist-console/internal/application"
	"github.com/bnema/remote-assist-console/internal/domain"
)

var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTicket):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotReady),
		errors.Is(err, domain.ErrNoActionSelected),
		errors.Is(err, domain.ErrNoPendingConfirmation),
		errors.Is(err, domain.ErrConfirmationPending),
		errors.Is(err, domain.ErrScopeMismatch),
		errors.Is(err, domain.ErrModeMismatch),
		errors.Is(err, domain.ErrNoActiveTicket):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, application.ErrUnsupportedAction),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidScope),
		errors.Is(err, domain.ErrInvalidNudgeAction),
		errors.Is(err, domain.ErrInvalidBlockerAction),
		errors.Is(err, domain.ErrInvalidReason),
		errors.Is(err, domain.ErrInvalidCoordinate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
