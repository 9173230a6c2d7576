// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/config"
	"github.com/walletmint/walletmint/consts"
)

// NewRootCmd builds the whole command tree together with the [Handler] its
// commands share.
func NewRootCmd() (*cobra.Command, *Handler) {
	opts := &globalOptions{}
	h := NewHandler(opts)
	run := &mintFlags{}

	rootCmd := &cobra.Command{
		Use:   consts.Name,
		Short: "Provision an email wallet and mint an NFT into it",
		Long: "Creates (or retrieves) the custodial wallet tied to an email address on a chain,\n" +
			"then mints a single NFT to email:<email>:<chain>.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return h.Init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFull(cmd, h, run)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configDir, "config-dir", "", "directory holding config.yaml (default ~/.walletmint-cli)")
	pf.StringP(config.KeyOutput, "o", consts.DefaultOutput, "output format: text, json or yaml")
	pf.String(config.KeyEndpoint, consts.DefaultEndpoint, "Crossmint API base URL")
	pf.DurationVar(&opts.timeout, "timeout", consts.DefaultTimeout, "HTTP timeout for each request (0 disables)")
	pf.String(config.KeyLogLevel, consts.DefaultLogLevel, "log level: verbo, debug, trace, info, warn, error, fatal, off")
	pf.StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file, rotated")
	pf.StringVar(&opts.metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")
	pf.StringVar(&opts.traceEndpoint, "trace-endpoint", "", "zipkin collector URL; tracing is off when empty")
	pf.Float64Var(&opts.traceSampleRate, "trace-sample-rate", consts.DefaultSampleRate, "fraction of traces to sample")
	pf.BoolVar(&opts.confirm, "confirm", false, "ask before minting")

	run.register(rootCmd, true)

	rootCmd.AddCommand(
		newWalletCmd(h),
		newMintCmd(h),
		newConfigCmd(h),
		newVersionCmd(h),
	)
	return rootCmd, h
}

// Execute runs the command line and flushes logs, spans and metrics whether
// or not the command succeeded.
func Execute(ctx context.Context) error {
	rootCmd, h := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, h.Close())
}
