// Package models defines the catalog entities and the JSON envelopes the
// API returns. Wire names are snake_case; optional fields are pointers.
package models

// User is the authenticated account.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// AuthResponse is returned by login and registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// LoginRequest is the session creation body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the registration body.
type RegisterRequest struct {
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ErrorResponse is the body of a non-2xx reply. Either field may be absent.
type ErrorResponse struct {
	Error  *string  `json:"error"`
	Errors []string `json:"errors"`
}
