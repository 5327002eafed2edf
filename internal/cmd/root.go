package cmd

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// NewRootCommand builds the service-pets command tree. Running it without a
// subcommand starts the HTTP service.
func NewRootCommand() *cobra.Command {
	serve := newServeCommand()

	root := &cobra.Command{
		Use:          "service-pets",
		Short:        "service-pets",
		Long:         `service-pets manages pet records over HTTP under /miclat/pets`,
		Version:      version,
		RunE:         serve.RunE,
		SilenceUsage: true,
	}
	root.AddCommand(serve, newSeedCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
