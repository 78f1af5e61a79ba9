package corogo

import "fmt"

// ErrProtocolViolation is wrapped by every documented API misuse this
// package detects: resuming a completed coroutine, resuming from a
// goroutine other than the one driving it, and similar programming errors.
// These are abort-class failures — panic values, never returned errors —
// because there is no valid state to hand back to a caller once the
// coroutine/invoker protocol has been used incorrectly.
var ErrProtocolViolation = fmt.Errorf("corogo: protocol violation")

// ErrCorruptControl is wrapped by panics raised when the wire state
// machine produces a message that should be impossible to reach, such as a
// routine replying to a drop request with anything other than
// acknowledging the drop. Seeing this indicates a bug inside corogo
// itself, not in caller code.
var ErrCorruptControl = fmt.Errorf("corogo: corrupt control state")

// ProtocolError is the panic value raised for every ErrProtocolViolation.
// Reason names the specific misuse.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProtocolViolation, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return ErrProtocolViolation
}

func protocolViolation(reason string) {
	panic(&ProtocolError{Reason: reason})
}

// CorruptControlError is the panic value raised for every
// ErrCorruptControl.
type CorruptControlError struct {
	Reason string
}

func (e *CorruptControlError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCorruptControl, e.Reason)
}

func (e *CorruptControlError) Unwrap() error {
	return ErrCorruptControl
}

func corruptControl(reason string) {
	panic(&CorruptControlError{Reason: reason})
}
