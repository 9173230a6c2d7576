// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/config"
	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/mint"
)

// mintFlags are the per-invocation parameters. apiKey and chain are read
// back through the config store so they can also come from the environment
// or config.yaml.
type mintFlags struct {
	withMint bool

	email        string
	collectionID string
	nftName      string
	description  string
	imageURL     string
}

func (f *mintFlags) register(cmd *cobra.Command, withMint bool) {
	fs := cmd.Flags()
	fs.StringVarP(&f.email, "email", "e", "", "email the wallet belongs to")
	fs.StringP(config.KeyChain, "c", consts.DefaultChain, "chain to create the wallet on")
	fs.StringP(config.KeyAPIKey, "k", "", "Crossmint API key")
	f.withMint = withMint
	if !withMint {
		return
	}
	fs.StringVarP(&f.collectionID, "collectionId", "i", "", "collection to mint into")
	fs.StringVarP(&f.nftName, "nftName", "n", consts.DefaultNFTName, "NFT name")
	fs.StringVarP(&f.description, "description", "d", consts.DefaultDescription, "NFT description")
	fs.StringVarP(&f.imageURL, "imageUrl", "u", consts.DefaultImageURL, "NFT image URL")
}

// params applies a default exactly when its flag is omitted. An explicit
// empty value is kept and left to [mint.Params.Verify].
func (f *mintFlags) params(cmd *cobra.Command, h *Handler) mint.Params {
	p := h.baseParams()
	fs := cmd.Flags()
	if fs.Changed(config.KeyChain) {
		p.Chain, _ = fs.GetString(config.KeyChain)
	}
	if fs.Changed(config.KeyAPIKey) {
		p.APIKey, _ = fs.GetString(config.KeyAPIKey)
	}
	p.Email = f.email
	if !f.withMint {
		return p
	}
	p.CollectionID = f.collectionID
	p.NFTName = f.nftName
	p.Description = f.description
	p.ImageURL = f.imageURL
	return p
}
