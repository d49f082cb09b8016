package api

import "fmt"

// ErrAuthentication is returned when the API rejects a request's credentials,
// including rejected login attempts and requests bearing an invalid token.
type ErrAuthentication struct {
	Reason string `json:"reason"`
}

func (e *ErrAuthentication) Error() string {
	if e.Reason == "" {
		return "could not authenticate the request"
	}
	return fmt.Sprintf("could not authenticate the request: %s", e.Reason)
}

// ErrAuthorization is returned when an authenticated request is not permitted.
type ErrAuthorization struct{}

func (e *ErrAuthorization) Error() string {
	return "the request is not authorized"
}

// ErrBadRequest is returned when the API rejects a request as malformed or
// failing validation. Details carries any field-level validation messages the
// server included.
type ErrBadRequest struct {
	Reason  string   `json:"reason"`
	Details []string `json:"details,omitempty"`
}

func (e *ErrBadRequest) Error() string {
	msg := "bad request"
	if e.Reason != "" {
		msg = fmt.Sprintf("bad request: %s", e.Reason)
	}
	for i, detail := range e.Details {
		msg = fmt.Sprintf("%s\n  %d. %s", msg, i+1, detail)
	}
	return msg
}

// ErrNotFound is returned when the requested resource does not exist.
type ErrNotFound struct {
	Reason string `json:"reason"`
}

func (e *ErrNotFound) Error() string {
	if e.Reason == "" {
		return "not found"
	}
	return e.Reason
}

// ErrConflict is returned when a request cannot be completed as-is, e.g.
// registering an email address that is already taken.
type ErrConflict struct {
	Reason string `json:"reason"`
}

func (e *ErrConflict) Error() string {
	if e.Reason == "" {
		return "conflict"
	}
	return e.Reason
}

// ErrInternalServer is returned when the API fails in an unspecified manner.
type ErrInternalServer struct{}

func (e *ErrInternalServer) Error() string {
	return "an internal server error occurred"
}

// ErrMalformedResponse is returned when the API reports success but the
// response body is missing fields the operation cannot proceed without. It
// exists so that garbage payloads are rejected at the client boundary instead
// of propagating half-formed state into callers.
type ErrMalformedResponse struct {
	Reason string `json:"reason"`
}

func (e *ErrMalformedResponse) Error() string {
	return fmt.Sprintf("malformed response from API server: %s", e.Reason)
}
