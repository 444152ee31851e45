// Package types defines the wire envelopes every solestock HTTP response uses.
package types

// SuccessEnvelope wraps every successful payload under a "data" key so clients
// can unmarshal uniformly across endpoints.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing error body: a stable machine code, a public
// message, and optional per-field details when the code allows them.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope mirrors SuccessEnvelope for failures.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
