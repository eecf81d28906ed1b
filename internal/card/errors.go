package card

import (
	"errors"
	"fmt"
)

// Sentinel errors matched with errors.Is.
var (
	ErrPrecondition = errors.New("card: precondition violated")
	ErrExhausted    = errors.New("card: generation attempts exhausted")
	ErrUnknownItem  = errors.New("card: item not in catalog")
)

// Precondition codes.
const (
	CodeInvalidTotal  = "INVALID_TOTAL"
	CodeInvalidTarget = "INVALID_TARGET"
	CodeLowPool       = "LOW_POOL"
)

// PreconditionError reports parameters that can never produce a card.
// It is returned immediately and never retried.
type PreconditionError struct {
	Code    string
	Message string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is reports whether target is ErrPrecondition.
func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// ExhaustedError is returned when no attempt produced a card whose first
// bingo lands exactly on WinAt.
type ExhaustedError struct {
	WinAt      int
	TotalItems int
	Attempts   int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("card: failed to generate card that wins at %d of %d after %d attempts",
		e.WinAt, e.TotalItems, e.Attempts)
}

// Is reports whether target is ErrExhausted.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

// LookupError is returned when a grid value has no catalog entry.
type LookupError struct {
	Value int
	Pos   Position
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("card: no catalog entry for item %d at %s", e.Value, e.Pos)
}

// Is reports whether target is ErrUnknownItem.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownItem
}
