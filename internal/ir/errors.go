package ir

import (
	"errors"
	"fmt"
)

// Construction errors. All are synchronous and programmer-facing: they are
// raised at the point of violation and never retried internally. Callers
// match them with errors.Is.
var (
	ErrUnknownNodeType        = errors.New("unknown node type")
	ErrUnknownPort            = errors.New("unknown port")
	ErrTypeMismatch           = errors.New("type mismatch")
	ErrDuplicateBinding       = errors.New("duplicate binding")
	ErrNoMatchingOutput       = errors.New("no matching output")
	ErrNoContentSlot          = errors.New("no content slot")
	ErrContentTypeMismatch    = errors.New("content type mismatch")
	ErrNotAnImpulse           = errors.New("not an impulse")
	ErrNotABoolean            = errors.New("not a boolean")
	ErrNotAList               = errors.New("not a list")
	ErrMissingImpulseInput    = errors.New("no impulse input")
	ErrMissingImpulseOutput   = errors.New("no impulse output")
	ErrUnsupportedCombination = errors.New("unsupported combination")
	ErrDanglingElse           = errors.New("else without open if")
	ErrChainClosed            = errors.New("chain closed")
)

// WireError wraps a construction failure with its error kind and a
// deterministic message naming the nodes and ports involved.
type WireError struct {
	Kind error
	Msg  string
}

func (e *WireError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *WireError) Unwrap() error { return e.Kind }

func wiref(kind error, format string, args ...any) error {
	return &WireError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
