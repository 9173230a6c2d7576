// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

// State is a step of a run. Runs only move forward.
type State uint8

const (
	Start State = iota
	WalletRequested
	WalletFailed
	WalletOK
	MintRequested
	MintFailed
	MintSkipped
	MintOK
)

func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case WalletRequested:
		return "wallet_requested"
	case WalletFailed:
		return "wallet_failed"
	case WalletOK:
		return "wallet_ok"
	case MintRequested:
		return "mint_requested"
	case MintFailed:
		return "mint_failed"
	case MintSkipped:
		return "mint_skipped"
	case MintOK:
		return "mint_ok"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	switch s {
	case WalletFailed, MintFailed, MintSkipped, MintOK:
		return true
	default:
		return false
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
