// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/utils"
)

func newConfigCmd(h *Handler) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent settings",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Persist a setting in config.yaml",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := h.store.Set(args[0], args[1]); err != nil {
					return err
				}
				utils.Fprintf(cmd.OutOrStdout(), "{{green}}saved{{/}} %s in %s\n", args[0], h.store.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the resolved settings with the API key masked",
			Args:  noArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg := h.cfg.Masked()
				return printValue(cmd.OutOrStdout(), h.Output(), cfg, func(w io.Writer) {
					utils.Fprintf(w, "{{yellow}}config file:{{/}} %s\n", h.store.Path())
					utils.Fprintf(w, "{{yellow}}apiKey:{{/}} %s\n", cfg.APIKey)
					utils.Fprintf(w, "{{yellow}}endpoint:{{/}} %s\n", cfg.Endpoint)
					utils.Fprintf(w, "{{yellow}}chain:{{/}} %s\n", cfg.Chain)
					utils.Fprintf(w, "{{yellow}}output:{{/}} %s\n", cfg.Output)
					utils.Fprintf(w, "{{yellow}}log-level:{{/}} %s\n", cfg.LogLevel)
				})
			},
		},
	)
	return configCmd
}
