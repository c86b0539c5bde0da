package services

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("services: invalid arguments")

// Kind discriminates validation failures so callers can branch on them
// without parsing messages.
type Kind int

const (
	KindMissingArguments Kind = iota + 1
	KindNameNotString
	KindCallbackNotInvocable
	KindWrongArity
	KindInvalidID
	KindMissingServiceName
	KindArgumentMismatch
)

var kindNames = map[Kind]string{
	KindMissingArguments:     "missing arguments",
	KindNameNotString:        "service name not a string",
	KindCallbackNotInvocable: "callback not invocable",
	KindWrongArity:           "wrong arity",
	KindInvalidID:            "invalid service id",
	KindMissingServiceName:   "missing service name",
	KindArgumentMismatch:     "argument mismatch",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ── ValidationError ──────────────────────────────────────────────────────────

// ValidationError reports a malformed call. It is returned before the
// registry is mutated or any callback runs.
type ValidationError struct {
	Op      string // register | unregister | invoke
	Kind    Kind
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(".%s() %s", e.Op, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	if target == ErrValidation {
		return true
	}
	var other *ValidationError
	if errors.As(target, &other) {
		return other.Kind == e.Kind
	}
	return false
}

// messages holds the text for each kind, keyed by operation.
var messages = map[Kind]map[string]string{
	KindMissingArguments: {
		"register": "expects at least two arguments, the service name and the service callback.",
	},
	KindNameNotString: {
		"register":   "expects a string for the service name.",
		"unregister": "expects a string for the service name.",
		"invoke":     "expects a string for the service name.",
	},
	KindCallbackNotInvocable: {
		"register": "expects a function for the service callback.",
	},
	KindWrongArity: {
		"unregister": "expects exactly two arguments, the service id and the service name.",
	},
	KindInvalidID: {
		"unregister": "expects a service id returned by .register() for the service id.",
	},
	KindMissingServiceName: {
		"invoke": "expects at least one argument, the service name.",
	},
}

func newValidationError(op string, kind Kind, detail ...string) error {
	msg := messages[kind][op]
	if msg == "" {
		msg = kind.String()
	}
	for _, d := range detail {
		msg += " " + d
	}
	return &ValidationError{Op: op, Kind: kind, Message: msg}
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// KindOf returns the Kind of the first *ValidationError in err's chain.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries a *ValidationError of the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
