package errors

import (
	"fmt"

	"github.com/samsonr/cli/ui"
)

// maxBodyInError bounds how much of a response body ends up in an error message.
const maxBodyInError = 512

// ClientBuildError means the API client could not be constructed.
type ClientBuildError struct {
	Reason string
	Err    error
}

func (e *ClientBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", ui.RedText("Could not build Samson client:"), e.Reason, e.Err)
	}
	return fmt.Sprintf("%s %s", ui.RedText("Could not build Samson client:"), e.Reason)
}

func (e *ClientBuildError) Unwrap() error {
	return e.Err
}

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", ui.RedText("Could not reach Samson:"), e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseFormatError means Samson answered with a body we could not make
// sense of. Body holds the raw payload.
type ResponseFormatError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *ResponseFormatError) Error() string {
	body := string(e.Body)
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}
	return fmt.Sprintf("%s status=%d: %v\n%s", ui.RedText("Unexpected response from Samson"), e.StatusCode, e.Err, ui.GrayText(body))
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}

// RemoteRejection is an explicit refusal by Samson, reported verbatim.
type RemoteRejection struct {
	Status  int
	Message string
}

func (e *RemoteRejection) Error() string {
	return fmt.Sprintf("%s %d - %s", ui.RedText("Samson rejected the request:"), e.Status, e.Message)
}
