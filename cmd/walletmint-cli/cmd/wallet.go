// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/crossmint"
	"github.com/walletmint/walletmint/mint"
	"github.com/walletmint/walletmint/utils"
)

type walletResponse struct {
	Email  string                    `json:"email"`
	Chain  string                    `json:"chain"`
	Wallet *crossmint.WalletResponse `json:"wallet"`
}

func newWalletCmd(h *Handler) *cobra.Command {
	f := &mintFlags{}
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Create or retrieve the wallet for an email without minting",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := f.params(cmd, h)
			if err := p.VerifyWallet(); err != nil {
				return err
			}
			cli, err := h.Client(p.APIKey)
			if err != nil {
				return err
			}
			wallet, err := h.Orchestrator(cli).Provisioner().ProvisionWallet(cmd.Context(), p.Email, p.Chain)
			if err != nil {
				return fmt.Errorf("%w: %w", mint.ErrWalletFailed, err)
			}
			resp := &walletResponse{Email: p.Email, Chain: p.Chain, Wallet: wallet}
			return printValue(cmd.OutOrStdout(), h.Output(), resp, func(w io.Writer) {
				utils.Fprintf(w, "{{yellow}}email:{{/}} %s\n", resp.Email)
				utils.Fprintf(w, "{{yellow}}chain:{{/}} %s\n", resp.Chain)
				if wallet.PublicKey != "" {
					utils.Fprintf(w, "{{yellow}}address:{{/}} %s\n", wallet.PublicKey)
				}
				utils.Fprintf(w, "{{yellow}}wallet:{{/}} %s\n", rawString(wallet))
			})
		},
	}
	f.register(cmd, false)
	return cmd
}
