package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// upstream collaborators failed. callers may retry, the engine never does.
var (
	ErrLogUnavailable            = errors.New("transaction log unavailable")
	ErrPriceReferenceUnavailable = errors.New("price reference unavailable")
)

func IsRetryable(err error) bool {
	return errors.Is(err, ErrLogUnavailable) || errors.Is(err, ErrPriceReferenceUnavailable)
}

// LedgerIntegrityError reports a leg that would have driven a balance
// negative. The leg is rejected and replay continues.
type LedgerIntegrityError struct {
	Strategy  Strategy
	Symbol    string
	Date      time.Time
	LegID     uuid.UUID
	Held      decimal.Decimal
	Requested decimal.Decimal
}

func (e LedgerIntegrityError) Error() string {
	return fmt.Sprintf(
		"ledger integrity violation: %s %s on %s sells %s shares with %s available",
		e.Strategy,
		e.Symbol,
		e.Date.Format(time.DateOnly),
		e.Requested.String(),
		e.Held.String(),
	)
}

// InvalidLegError reports a leg that was skipped before replay.
type InvalidLegError struct {
	Leg    TransactionLeg
	Reason string
}

func (e InvalidLegError) Error() string {
	return fmt.Sprintf(
		"invalid leg %s (%s %s on %s): %s",
		e.Leg.ID,
		e.Leg.Strategy,
		e.Leg.Symbol,
		e.Leg.Date.Format(time.DateOnly),
		e.Reason,
	)
}

// LedgerHealth travels with every query result.
type LedgerHealth struct {
	Degraded    bool
	Violations  []LedgerIntegrityError
	InvalidLegs []InvalidLegError
}
