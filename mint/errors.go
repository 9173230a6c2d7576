// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import "errors"

var (
	ErrMissingParam = errors.New("missing required parameter")
	ErrWalletFailed = errors.New("error creating wallet")
	ErrMintFailed   = errors.New("error minting NFT")
)
