// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/crossmint"
	"github.com/walletmint/walletmint/mint"
	"github.com/walletmint/walletmint/utils"
)

type runResponse struct {
	Params    mint.Params               `json:"params"`
	Recipient string                    `json:"recipient"`
	State     mint.State                `json:"state"`
	Wallet    *crossmint.WalletResponse `json:"wallet,omitempty"`
	Mint      *crossmint.MintResponse   `json:"mint,omitempty"`
}

func runFull(cmd *cobra.Command, h *Handler, f *mintFlags) error {
	p := f.params(cmd, h)
	if err := p.Verify(); err != nil {
		return err
	}
	cli, err := h.Client(p.APIKey)
	if err != nil {
		return err
	}
	out, err := h.Orchestrator(cli).Run(cmd.Context(), p)
	if err != nil {
		return err
	}

	resp := &runResponse{
		Params:    p,
		Recipient: p.Recipient(),
		State:     out.State,
		Wallet:    out.Wallet,
		Mint:      out.Mint,
	}
	return printValue(cmd.OutOrStdout(), h.Output(), resp, func(w io.Writer) {
		utils.Fprintf(w, "{{yellow}}recipient:{{/}} %s\n", resp.Recipient)
		if resp.Wallet != nil {
			utils.Fprintf(w, "{{yellow}}wallet:{{/}} %s\n", rawString(resp.Wallet))
		}
		if resp.Mint != nil {
			utils.Fprintf(w, "{{yellow}}nft:{{/}} %s\n", rawString(resp.Mint))
		}
		if out.Succeeded() {
			utils.Fprintf(w, "{{green}}minted NFT to %s{{/}}\n", resp.Recipient)
		} else {
			utils.Fprintf(w, "{{red}}mint skipped{{/}}\n")
		}
	})
}
