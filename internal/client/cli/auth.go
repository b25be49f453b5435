package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pencilkeeper/internal/client/controllers"
	"github.com/dmitrijs2005/pencilkeeper/internal/client/session"
	"github.com/dmitrijs2005/pencilkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, password and its confirmation and creates an
// account. On success the session is stored and the user is signed in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	a.auth.Register(ctx, email, string(password), string(confirmation))
	if err := failure(a.auth); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.auth.Login(ctx, email, string(password))
	if err := failure(a.auth); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout always succeeds locally; see controllers.AuthController.Logout.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Status prints whether a session exists and what its token says about it.
func (a *App) Status(ctx context.Context) error {
	if !a.auth.IsAuthenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	if u := a.auth.CurrentUser(); u != nil {
		fmt.Fprintf(a.out, "Logged in as %s (id %d)\n", u.Email, u.ID)
	} else {
		fmt.Fprintln(a.out, "Logged in (stored session)")
	}

	info, err := a.auth.SessionInfo()
	switch {
	case errors.Is(err, session.ErrOpaqueToken):
		fmt.Fprintln(a.out, "Session token is opaque")
	case errors.Is(err, controllers.ErrNoSession):
		fmt.Fprintln(a.out, "No stored session")
	case err != nil:
		return err
	default:
		fmt.Fprintf(a.out, "Session: %s\n", info)
		if info.Expired(time.Now()) {
			fmt.Fprintln(a.out, "Session has expired; the next request will ask you to log in again")
		}
	}
	return nil
}
