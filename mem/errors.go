package mem

import "errors"

var (
	// ErrMismatchedHalves signals an attempt to reunite halves of different pairs.
	ErrMismatchedHalves = errors.New("mem: halves stem from different share calls")
	// ErrConsumed signals use of a half whose pair has already been reunited.
	ErrConsumed = errors.New("mem: pair has already been reunited")
	// ErrDetached signals use of a zero half which was never produced by Share.
	ErrDetached = errors.New("mem: half is not attached to a shared cell")
)

// PairingError is the panic value for violations of the pairing discipline.
// These are not recoverable: once halves have been mixed up, the maps holding
// them no longer agree about which value is stored where.
type PairingError struct {
	Op  string // operation which detected the violation
	Err error  // one of the sentinel errors of this package
}

func (e *PairingError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PairingError) Unwrap() error {
	return e.Err
}

func pairingViolation(op string, err error) {
	tracer().Errorf("%s: %s", op, err.Error())
	panic(&PairingError{Op: op, Err: err})
}
