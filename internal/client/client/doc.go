// Package client is the transport layer of the catalog client.
//
// # Overview
//
// HTTPClient is the single place that talks to the remote API. It resolves an
// endpoint.Endpoint into a URL, attaches the bearer token held by the
// keychain.TokenStore, sends JSON or a multipart proof upload, decodes the JSON
// reply and classifies every failure.
//
// # Error Handling
//
// Failures are *APIError values whose Kind is one of the sentinel errors
// ErrInvalidRequest, ErrInvalidResponse, ErrUnauthorized, ErrServer,
// ErrDecoding, ErrNetwork; match them with errors.Is. Error() is the text shown
// to users. A 401 deletes the stored token before the error is returned and
// then runs the hooks registered with OnUnauthorized.
//
// Nothing is retried here. Callers decide whether to try again.
package client
