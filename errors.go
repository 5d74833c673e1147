package urlbuf

import (
	"errors"
	"fmt"
)

// Kind classifies the failure reported by a setter or codec operation.
type Kind uint8

const (
	// KindInvalidPart means the input does not conform to the grammar
	// of the component being parsed or set, contains a malformed
	// percent-escape, or uses a byte outside the allowed CharSet.
	KindInvalidPart Kind = iota + 1
	// KindNeedMore means a streaming grammar ran out of input mid-token.
	// Only the streaming PercentCodec.Parse reports it; validators,
	// decoders and Url setters report a truncated escape as
	// KindInvalidPart.
	KindNeedMore
	// KindTooLarge means a resize would exceed the buffer's maximum
	// capacity.
	KindTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPart:
		return "invalid_part"
	case KindNeedMore:
		return "need_more"
	case KindTooLarge:
		return "too_large"
	default:
		return "unknown"
	}
}

// Error wraps a Kind and an operation name around an underlying cause.
//
// It supports errors.Is/errors.As against both the Kind-level sentinels
// (ErrInvalidPart, ErrNeedMore, ErrTooLarge) and any component-specific
// sentinel passed as cause.
type Error struct {
	Op    string
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Op + ": " + e.Kind.String()
	}

	return e.Op + ": " + e.Kind.String() + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Is(target error) bool {
	switch {
	case target == ErrInvalidPart:
		return e.Kind == KindInvalidPart
	case target == ErrNeedMore:
		return e.Kind == KindNeedMore
	case target == ErrTooLarge:
		return e.Kind == KindTooLarge
	default:
		return false
	}
}

// newError builds a *Error for op, tagging it with kind and joining in
// cause (which may itself already be a sentinel or a wrapped chain).
func newError(op string, kind Kind, cause error) *Error {
	return &Error{Op: op, Kind: kind, cause: cause}
}

// errorsJoin is a thin indirection over errors.Join kept as its own
// function so call sites read the same way regardless of how the
// underlying stdlib join evolves.
func errorsJoin(errs ...error) error {
	return errors.Join(errs...)
}

// Kind-level sentinels. Every *Error reports true for errors.Is against
// exactly one of these.
var (
	ErrInvalidPart = errors.New("invalid_part")
	ErrNeedMore    = errors.New("need_more")
	ErrTooLarge    = errors.New("too_large")
)

// Component-specific sentinels, joined into the cause chain of the
// *Error a setter or grammar returns so callers can errors.Is against
// the specific component as well as the generic Kind.
var (
	ErrInvalidScheme         = errors.New("invalid scheme")
	ErrInvalidUserInfo       = errors.New("invalid userinfo")
	ErrInvalidHost           = errors.New("invalid host")
	ErrInvalidHostAddress    = errors.New("invalid host address")
	ErrInvalidRegisteredName = errors.New("invalid registered name")
	ErrInvalidPort           = errors.New("invalid port")
	ErrInvalidPath           = errors.New("invalid path")
	ErrInvalidQuery          = errors.New("invalid query")
	ErrInvalidFragment       = errors.New("invalid fragment")
	ErrInvalidEscaping       = errors.New("invalid percent-escaping")
	ErrMissingHost           = errors.New("port specified without a host")
)

// invalidPartf builds an *Error of KindInvalidPart for op, joining the
// component sentinel with a formatted detail message.
func invalidPartf(op string, sentinel error, format string, args ...any) *Error {
	return newError(op, KindInvalidPart, errorsJoin(sentinel, fmt.Errorf(format, args...)))
}

func needMore(op string, sentinel error) *Error {
	return newError(op, KindNeedMore, sentinel)
}

func tooLarge(op string, requested, limit int) *Error {
	return newError(op, KindTooLarge, fmt.Errorf("requested %d bytes exceeds capacity %d", requested, limit))
}
