// Package services is the typed gateway over the transport client: one
// service per API area, each method one request. Services keep no state
// besides the token they persist on login and registration.
package services
