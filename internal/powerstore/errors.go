package powerstore

import "fmt"

// AuthError indicates the login call failed or returned no usable token.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return "authentication failed"
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RequestError indicates a read or generate call against the appliance
// failed. Message carries the appliance's own error detail when the response
// body was parseable, otherwise the transport-level description.
type RequestError struct {
	URL     string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %s", e.URL, e.Message)
}
