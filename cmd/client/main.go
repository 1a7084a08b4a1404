package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpggio/itemboard/internal/client"
	"github.com/rpggio/itemboard/internal/controller"
	"github.com/rpggio/itemboard/internal/logging"
	"github.com/rpggio/itemboard/internal/tui"
)

func main() {
	defaultURL := os.Getenv("ITEMBOARD_API_URL")
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}

	apiURL := flag.String("api", defaultURL, "base URL of the itemboard server")
	themeName := flag.String("theme", tui.ThemeDark, "color theme: dark or light")
	flag.Parse()

	theme, err := tui.ThemeByName(*themeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The screen owns stdout, so logs only go to a file when one is configured.
	logger, closeLog, err := logging.New(io.Discard, os.Getenv("ITEMBOARD_LOG_PATH"), os.Getenv("ITEMBOARD_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
	}
	defer closeLog()

	gw, err := client.New(*apiURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, controller.New(gw, logger), theme); err != nil {
		logger.Error("ui error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
