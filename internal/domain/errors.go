package domain

import "errors"

var (
	ErrUnknownTicket         = errors.New("unknown ticket")
	ErrNoActiveTicket        = errors.New("no active ticket")
	ErrDuplicateTicket       = errors.New("duplicate ticket")
	ErrInvalidTicket         = errors.New("invalid ticket")
	ErrNotReady              = errors.New("command not ready")
	ErrNoActionSelected      = errors.New("no blocker action selected")
	ErrNoPendingConfirmation = errors.New("no pending confirmation")
	ErrConfirmationPending   = errors.New("confirmation pending")
	ErrScopeMismatch         = errors.New("operation not available in current scope")
	ErrModeMismatch          = errors.New("operation not available in current mode")
	ErrInvalidMode           = errors.New("invalid intervention mode")
	ErrInvalidScope          = errors.New("invalid scope")
	ErrInvalidNudgeAction    = errors.New("invalid nudge action")
	ErrInvalidBlockerAction  = errors.New("invalid blocker action")
	ErrInvalidReason         = errors.New("invalid incident reason")
	ErrInvalidCoordinate     = errors.New("invalid coordinate")
	ErrSeedNotFound          = errors.New("ticket seed not found")
)
