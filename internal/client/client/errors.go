package client

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrInvalidResponse = errors.New("invalid response")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrServer          = errors.New("server error")
	ErrDecoding        = errors.New("decoding error")
	ErrNetwork         = errors.New("network error")
)

// APIError is a classified transport failure. Message is the user-facing text.
type APIError struct {
	Kind       error
	Message    string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidRequest(err error) *APIError {
	return &APIError{Kind: ErrInvalidRequest, Message: "Invalid URL", Err: err}
}

func invalidResponse(err error) *APIError {
	return &APIError{Kind: ErrInvalidResponse, Message: "Invalid response from server", Err: err}
}

func unauthorized() *APIError {
	return &APIError{Kind: ErrUnauthorized, Message: "Please log in to continue", StatusCode: 401}
}

func serverError(status int, message string) *APIError {
	return &APIError{Kind: ErrServer, Message: message, StatusCode: status}
}

func decodingError(status int, err error) *APIError {
	return &APIError{
		Kind:       ErrDecoding,
		Message:    fmt.Sprintf("Failed to decode response: %v", err),
		StatusCode: status,
		Err:        err,
	}
}

func networkError(err error) *APIError {
	return &APIError{Kind: ErrNetwork, Message: fmt.Sprintf("Network error: %v", err), Err: err}
}

// DisplayMessage returns the text to show for err: the classified message for
// an *APIError anywhere in the chain, err.Error() otherwise, "" for nil.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
