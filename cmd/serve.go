package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Davharepriyanka/CSV-Analyzer-Dashboard/internal/app"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*cfgFile)
		},
	}
}

func runServe(cfgFile string) error {
	application := app.New(cfgFile) // Initialize the application
	wait := application.Start()     // Start the application and wait for the termination signal
	<-wait                          // Wait for the application to receive a termination signal

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx) // Stop the application gracefully

	return nil
}
