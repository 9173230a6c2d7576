// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "time"

const (
	Name    = "walletmint-cli"
	Version = "v0.1.0"

	// Namespace prefixes every exported metric.
	Namespace = "walletmint"
)

// Remote API contract.
const (
	DefaultEndpoint = "https://www.crossmint.com/api"

	WalletsPath     = "/v1-alpha1/wallets"
	CollectionsPath = "/2022-06-09/collections"
	NFTsPath        = "/nfts"

	APIKeyHeader = "X-API-KEY"

	RecipientScheme = "email"
)

// Flag defaults.
const (
	DefaultChain       = "base"
	DefaultNFTName     = "Crossmint Example NFT"
	DefaultDescription = "My NFT created via the mint API!"
	DefaultImageURL    = "https://www.crossmint.com/assets/crossmint/logo.png"

	DefaultTimeout    = 30 * time.Second
	DefaultOutput     = "text"
	DefaultLogLevel   = "info"
	DefaultSampleRate = 1.0

	MaxResponseSize = 1 << 20 // 1 MiB
)
