// Package keychain stores the bearer token between runs.
//
// The rest of the client only sees the TokenStore interface. MemoryStore is
// meant for tests and for embedding the core in a host that has its own
// secure storage; FileStore backs the CLI.
package keychain

// TokenStore is the secure-storage capability the client core consumes.
// Implementations must be safe for concurrent use.
type TokenStore interface {
	SaveToken(token string) error
	// GetToken reports the stored token and whether one exists.
	GetToken() (string, bool)
	DeleteToken() error
	HasToken() bool
}
