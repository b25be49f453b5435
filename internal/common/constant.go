// Package common contains shared constants and small helpers used across
// pencilkeeper components.
package common

// HTTP header names and values attached to outbound API requests.
const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"

	BearerPrefix = "Bearer "

	MIMEApplicationJSON = "application/json"
	MIMEImageJPEG       = "image/jpeg"
)

// Multipart layout of a proof upload. The server expects exactly these names.
const (
	ProofFieldName = "proof"
	ProofFileName  = "proof.jpg"
)
