// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/mint"
)

var (
	ErrInvalidOutput = errors.New("invalid output format")
	ErrInvalidArgs   = errors.New("invalid args")
)

// Reported is true for errors that were logged when they happened.
func Reported(err error) bool {
	return errors.Is(err, mint.ErrWalletFailed) || errors.Is(err, mint.ErrMintFailed)
}

// noArgs rejects positional arguments. Every input is passed as a flag.
func noArgs(_ *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected %q", ErrInvalidArgs, args)
	}
	return nil
}
