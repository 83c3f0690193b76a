package services

import "context"

// GatewayErrorKind classifies reply gateway failures.
type GatewayErrorKind string

const (
	GatewayUnreachable   GatewayErrorKind = "unreachable"
	GatewayRejected      GatewayErrorKind = "rejected"
	GatewayEmptyResponse GatewayErrorKind = "empty_response"
)

// GatewayError is a typed failure from the generative backend. The chat
// controller never surfaces it to users; it substitutes a locale fallback.
type GatewayError struct {
	Kind  GatewayErrorKind
	cause error
}

func (e *GatewayError) Error() string {
	if e.cause != nil {
		return "gateway " + string(e.Kind) + ": " + e.cause.Error()
	}
	return "gateway " + string(e.Kind)
}

func (e *GatewayError) Unwrap() error { return e.cause }

// ReplyGateway sends one completion request to the generative-language
// backend. One attempt per call; callers bound the wait with the context.
type ReplyGateway interface {
	Complete(ctx context.Context, userText, systemInstruction, lang string) (string, error)
}
