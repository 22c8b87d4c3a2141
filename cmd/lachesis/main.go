package main

import (
	"fmt"
	"os"

	"github.com/alexmorozov/lachesis/internal/cli"
	"github.com/alexmorozov/lachesis/internal/gateway"
	"github.com/alexmorozov/lachesis/internal/store"
	"github.com/alexmorozov/lachesis/internal/workflow"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env next to the binary is a development convenience; absence is fine.
	_ = godotenv.Load()

	cfg := gateway.LoadConfig()

	var observer gateway.Observer = gateway.NoopObserver{}
	if cfg.LogCalls {
		observer = gateway.NewLogObserver(os.Stderr)
	}

	client := gateway.NewClient(cfg, observer)
	st := store.New(cfg.StatsCacheSize)
	if cfg.LogCalls {
		st.Subscribe(func(ev store.Event) {
			fmt.Fprintf(os.Stderr, "store_event kind=%s\n", ev.Kind)
		})
	}

	app := &cli.App{
		Flows: workflow.New(client, st),
	}

	// Detect interactive terminal for the bare `lachesis` entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
