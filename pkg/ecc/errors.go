package ecc

import (
	"errors"
	"fmt"
)

// Kind classifies the failures raised by the arithmetic packages.
type Kind int

const (
	KindUnknown Kind = iota
	NotInvertible
	NotQuadraticResidue
	InvalidSecretKey
	SingularCurve
	InvalidModulus
	InvalidPoint
	InvalidLoopCount
)

// Sentinel errors, one per Kind. *Error unwraps to these.
var (
	ErrNotInvertible       = errors.New("not invertible")
	ErrNotQuadraticResidue = errors.New("not a quadratic residue")
	ErrInvalidSecretKey    = errors.New("secret key out of range")
	ErrSingularCurve       = errors.New("singular curve")
	ErrInvalidModulus      = errors.New("invalid modulus")
	ErrInvalidPoint        = errors.New("invalid point")
	ErrInvalidLoopCount    = errors.New("invalid loop count")
)

var sentinels = map[Kind]error{
	NotInvertible:       ErrNotInvertible,
	NotQuadraticResidue: ErrNotQuadraticResidue,
	InvalidSecretKey:    ErrInvalidSecretKey,
	SingularCurve:       ErrSingularCurve,
	InvalidModulus:      ErrInvalidModulus,
	InvalidPoint:        ErrInvalidPoint,
	InvalidLoopCount:    ErrInvalidLoopCount,
}

func (k Kind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}
	return "unknown error"
}

// Error records the operation that failed and why.
// It allows callers to branch on Kind without parsing messages.
type Error struct {
	Op     string
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

// NewError creates a new Error. Detail is formatted with fmt.Sprintf when args are given.
func NewError(op string, kind Kind, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
	}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for k, s := range sentinels {
		if errors.Is(err, s) {
			return k
		}
	}
	return KindUnknown
}
