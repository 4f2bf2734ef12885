package messenger

import "fmt"

// ConfigurationError reports a credential problem detected at construction
// time, before any operation can be invoked.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// RemoteRejectedError carries a 4xx answer from the Graph API. The body is
// kept verbatim so callers can inspect the platform error code without
// re-deriving it from logs.
type RemoteRejectedError struct {
	Status int
	Body   string
}

func (e *RemoteRejectedError) Error() string {
	return fmt.Sprintf("remote service rejected request: status %d, body: %s", e.Status, e.Body)
}

// NotFoundError is returned by profile lookups when the remote service does
// not know the given id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no profile found for id %q", e.ID)
}

// TransportError covers everything between us and a usable answer: timeouts,
// DNS failures, refused connections, cancelled contexts and 5xx responses.
// The call is never retried; retry policy belongs to the caller.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
