package legalquery

import "fmt"

// Reason classifies why a query failed. Reasons are for logs only; users
// always see one localized message.
type Reason string

const (
	ReasonTransport Reason = "transport"
	ReasonMalformed Reason = "malformed-response"
)

// HTTPStatusReason returns the reason for a non-2xx reply.
func HTTPStatusReason(code int) Reason {
	return Reason(fmt.Sprintf("http-status:%d", code))
}

// Result is the outcome of one query: either Success or Failure.
type Result interface {
	isResult()
}

// Success carries the answer text returned by the backend.
type Success struct {
	Answer string
}

// Failure carries the failure reason. It doubles as an error for logging.
type Failure struct {
	Reason Reason
}

func (Success) isResult() {}
func (Failure) isResult() {}

func (f Failure) Error() string { return "legal query failed: " + string(f.Reason) }
