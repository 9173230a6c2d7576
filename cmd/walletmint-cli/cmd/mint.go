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

type mintResponse struct {
	Recipient string                  `json:"recipient"`
	Metadata  crossmint.Metadata      `json:"metadata"`
	Mint      *crossmint.MintResponse `json:"mint"`
}

func newMintCmd(h *Handler) *cobra.Command {
	f := &mintFlags{}
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Mint an NFT to the wallet of an email without provisioning it first",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := f.params(cmd, h)
			if err := p.Verify(); err != nil {
				return err
			}
			cli, err := h.Client(p.APIKey)
			if err != nil {
				return err
			}
			recipient := p.Recipient()
			metadata := p.Metadata()
			nft, err := h.Orchestrator(cli).Minter().MintNFT(cmd.Context(), p.CollectionID, recipient, metadata)
			if err != nil {
				return fmt.Errorf("%w: %w", mint.ErrMintFailed, err)
			}
			resp := &mintResponse{Recipient: recipient, Metadata: metadata, Mint: nft}
			return printValue(cmd.OutOrStdout(), h.Output(), resp, func(w io.Writer) {
				utils.Fprintf(w, "{{yellow}}recipient:{{/}} %s\n", resp.Recipient)
				if nft.ID != "" {
					utils.Fprintf(w, "{{yellow}}id:{{/}} %s\n", nft.ID)
				}
				utils.Fprintf(w, "{{yellow}}nft:{{/}} %s\n", rawString(nft))
			})
		},
	}
	f.register(cmd, true)
	return cmd
}
