package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fittrack/internal/client/api"
	"fittrack/internal/client/cli"
	"fittrack/internal/client/session"
)

func main() {
	server := flag.String("server", "http://localhost:5000", "backend base URL")
	flag.Parse()

	sessions, err := session.NewStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	app, err := cli.NewApp(api.New(*server), sessions)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
