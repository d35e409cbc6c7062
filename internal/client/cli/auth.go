package cli

import (
	"context"
	"fmt"

	"fittrack/internal/dto"
)

// Register is the sign-up view: collect the form fields, create the account
// and cache the returned session.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}
	email, err := getText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, dto.RegisterRequest{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}

	if err := a.saveSession(resp.UserID, resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s. Logged in as %s\n", resp.Message, resp.UserEmail)
	return nil
}

// Login is the sign-in view.
func (a *App) Login(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.saveSession(resp.UserID, resp.Token); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s. Logged in as %s\n", resp.Message, resp.UserEmail)
	return nil
}

// Logout tells the server goodbye and clears the cached session. The server
// side is stateless, so this mainly exists to drop the local token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return err
	}

	if err := a.sessions.Clear(); err != nil {
		return err
	}
	a.current.UserID = ""
	a.current.Token = ""
	a.api.SetToken("")

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Whoami reports the cached session state.
func (a *App) Whoami() error {
	if !a.current.LoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "Logged in, user id %s\n", a.current.UserID)
	return nil
}
