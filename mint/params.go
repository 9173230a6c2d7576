// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import (
	"fmt"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/crossmint"
)

// Params is everything a run needs. It is built once from the command line
// and never modified afterwards.
type Params struct {
	Email        string `json:"email" yaml:"email"`
	Chain        string `json:"chain" yaml:"chain"`
	APIKey       string `json:"-" yaml:"-"`
	CollectionID string `json:"collectionId" yaml:"collectionId"`
	NFTName      string `json:"nftName" yaml:"nftName"`
	Description  string `json:"description" yaml:"description"`
	ImageURL     string `json:"imageUrl" yaml:"imageUrl"`
}

// DefaultParams returns the values used for every optional parameter that is
// not supplied.
func DefaultParams() Params {
	return Params{
		Chain:       consts.DefaultChain,
		NFTName:     consts.DefaultNFTName,
		Description: consts.DefaultDescription,
		ImageURL:    consts.DefaultImageURL,
	}
}

// Recipient is derived from the email and chain only.
func (p Params) Recipient() string {
	return crossmint.Recipient(p.Email, p.Chain)
}

func (p Params) Metadata() crossmint.Metadata {
	return crossmint.Metadata{
		Name:        p.NFTName,
		Image:       p.ImageURL,
		Description: p.Description,
	}
}

// VerifyWallet checks the parameters needed to provision a wallet.
func (p Params) VerifyWallet() error {
	switch {
	case p.Email == "":
		return fmt.Errorf("%w: email", ErrMissingParam)
	case p.Chain == "":
		return fmt.Errorf("%w: chain", ErrMissingParam)
	case p.APIKey == "":
		return fmt.Errorf("%w: apiKey", ErrMissingParam)
	default:
		return nil
	}
}

// Verify checks every parameter required by a full run.
func (p Params) Verify() error {
	if err := p.VerifyWallet(); err != nil {
		return err
	}
	if p.CollectionID == "" {
		return fmt.Errorf("%w: collectionId", ErrMissingParam)
	}
	return nil
}
