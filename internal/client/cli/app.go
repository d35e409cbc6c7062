// Package cli implements the terminal client: the registration, login and
// dashboard views of the web client, rendered as commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"fittrack/internal/client/api"
	"fittrack/internal/client/session"
)

// App wires the API client, the on-disk session cache and the terminal.
type App struct {
	api      *api.Client
	sessions *session.Store

	// current mirrors the cached session in memory for the lifetime of the
	// invocation, like the web client's user context.
	current session.Session

	reader *bufio.Reader
	out    io.Writer
}

// NewApp loads the cached session and prepares the terminal app.
func NewApp(apiClient *api.Client, sessions *session.Store) (*App, error) {
	sess, err := sessions.Load()
	if err != nil {
		return nil, err
	}

	if sess.LoggedIn() {
		apiClient.SetToken(sess.Token)
	}

	return &App{
		api:      apiClient,
		sessions: sessions,
		current:  sess,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run dispatches a single command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return nil
	}

	switch args[0] {
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami()
	case "dashboard":
		return a.Dashboard(ctx)
	case "exercise":
		return a.runExercise(ctx, args[1:])
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) runExercise(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("exercise needs a subcommand")
	}

	switch args[0] {
	case "list":
		return a.ListExercises(ctx)
	case "add":
		return a.AddExercise(ctx)
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("exercise delete needs an id")
		}
		return a.DeleteExercise(ctx, args[1])
	default:
		a.usage()
		return fmt.Errorf("unknown exercise subcommand %q", args[0])
	}
}

// saveSession persists and mirrors a fresh login.
func (a *App) saveSession(userID, token string) error {
	sess := session.Session{UserID: userID, Token: token}
	if err := a.sessions.Save(sess); err != nil {
		return err
	}
	a.current = sess
	a.api.SetToken(token)
	return nil
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `fittrack client

Commands:
  register            create an account and log in
  login               log in with email and password
  logout              log out and clear the cached session
  whoami              show the cached session state
  dashboard           show your info and the exercise log
  exercise list       list logged exercises
  exercise add        log a new exercise
  exercise delete ID  remove an exercise`)
}
