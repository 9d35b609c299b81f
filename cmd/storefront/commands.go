package main

import (
	"fmt"

	protocol "storefront/protocal"

	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands
type rootOptions struct {
	Env string
}

// newRootCommand creates the storefront command tree
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Storefront cart and session service",
		Long:  "Serves the storefront's cart, session and checkout API in front of the backend.",
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", "", "the environment to use (reads configs/config.<env>.yaml)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newPingCommand(opts))

	return cmd
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP server",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return protocol.ServeHTTP(opts.Env)
		},
	}
}

func newPingCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "ping",
		Short:        "Check that the configured storage is writable",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := protocol.Ping(cmd.Context(), opts.Env); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "storage ok")
			return nil
		},
	}
}
