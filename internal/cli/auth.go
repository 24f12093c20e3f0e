package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password and creates a new account.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.users.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created! You can login now.")
	return nil
}

// Login prompts for credentials and starts a session on success.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	ok, err := a.users.Authenticate(ctx, userName, string(password))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Welcome back, %s!\n", userName)

	rec, err := a.profile.Record(ctx, userName)
	if err == nil && !rec.Onboarded() {
		fmt.Fprintln(a.out, "Tip: run 'onboard' to set up your skin profile.")
	}
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
