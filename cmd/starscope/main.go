package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/starscope/desktop/app/lifecycle"
)

// Compile with the following to get rid of the cmd popup on windows
// go build -ldflags="-H windowsgui" ./cmd/starscope

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts lifecycle.Options

	cmd := &cobra.Command{
		Use:           "starscope",
		Short:         "StarScope desktop host",
		Long:          "Runs the StarScope tray icon and supervises the StarScope data engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.DataDir, "data-dir", "", "application data directory (default "+lifecycle.AppDataDir+")")
	flags.StringVar(&opts.SidecarPath, "sidecar", "", "path to the sidecar executable, skipping discovery")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a tray icon")
	flags.BoolVar(&opts.Dev, "dev", false, "also log to stderr")

	return cmd
}

func run(opts lifecycle.Options) error {
	release, err := ensureSingleInstance(opts.DataDir)
	if errors.Is(err, errAlreadyRunning) {
		fmt.Printf("%s is already running. Exiting.\n", lifecycle.AppName)
		return nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to check for single instance: %v\n", err)
		return err
	}
	defer release()

	if err := lifecycle.Run(opts); err != nil {
		slog.Error("FATAL: Initialization failed", "error", err)
		showErrorMessage(lifecycle.AppName+" could not start", err.Error())
		return err
	}
	return nil
}

func showErrorMessage(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
	if err := zenity.Error(message, zenity.Title(title), zenity.ErrorIcon); err != nil {
		slog.Debug("could not show error dialog", "error", err)
	}
}
