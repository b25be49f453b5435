// Package controllers holds the observable per-screen state of the client:
// auth, the paginated catalog, the user's collection, item groups, makers
// and public user profiles.
//
// Mutators block until their request completes; callers that want
// asynchrony run them in goroutines. State is guarded by a mutex that is
// never held across a request, so two mutators of one controller may
// interleave. Only the paginated fetch is protected against overlap.
package controllers
