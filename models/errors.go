package models

// ErrorKind is the machine-readable error identifier exposed over the API.
type ErrorKind string

const (
	KindInvalidPayload       ErrorKind = "invalid_payload"
	KindIncompleteSubmission ErrorKind = "incomplete_submission"
	KindInvalidOption        ErrorKind = "invalid_option"
	KindInvalidState         ErrorKind = "invalid_state"
	KindUnknownAttempt       ErrorKind = "unknown_attempt"
	KindUnknownSession       ErrorKind = "unknown_session"
	KindUnknownGlowtype      ErrorKind = "unknown_glowtype"
	KindUnknownMapping       ErrorKind = "unknown_archetype_mapping"
	KindInternal             ErrorKind = "internal"
)

// Error is a typed service error. Validation errors are caller mistakes and map
// to 4xx; KindUnknownMapping is a configuration defect and maps to a generic 500.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// Is matches any *Error with the same kind, so wrapped errors stay
// errors.Is-comparable against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrIncompleteSubmission = &Error{Kind: KindIncompleteSubmission, Message: "every question must be answered exactly once"}
	ErrInvalidOption        = &Error{Kind: KindInvalidOption, Message: "option does not belong to the referenced question"}
	ErrInvalidState         = &Error{Kind: KindInvalidState, Message: "operation not valid in the attempt's current state"}
	ErrUnknownAttempt       = &Error{Kind: KindUnknownAttempt, Message: "quiz attempt not found or expired"}
	ErrUnknownSession       = &Error{Kind: KindUnknownSession, Message: "chat session not found or expired"}
	ErrUnknownGlowtype      = &Error{Kind: KindUnknownGlowtype, Message: "glowtype not found"}
	ErrUnknownMapping       = &Error{Kind: KindUnknownMapping, Message: "tally resolved to no configured glowtype"}
)
