// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "walletmint-cli" provisions an email wallet and mints an NFT into it.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/walletmint/walletmint/cmd/walletmint-cli/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	cancel()
	if err != nil {
		// Failed runs have already been logged.
		if !cmd.Reported(err) {
			color.Red("walletmint-cli failed: %v", err)
		}
		os.Exit(1)
	}
	os.Exit(0)
}
