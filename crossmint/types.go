// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crossmint

import (
	"encoding/json"

	"github.com/walletmint/walletmint/consts"
)

// Metadata is the on-chain description of a minted NFT.
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Image       string `json:"image" yaml:"image"`
	Description string `json:"description" yaml:"description"`
}

// Recipient returns the email based recipient descriptor accepted by the
// mint endpoint.
func Recipient(email, chain string) string {
	return consts.RecipientScheme + ":" + email + ":" + chain
}

type WalletRequest struct {
	Email string `json:"email"`
	Chain string `json:"chain"`
}

type MintRequest struct {
	Recipient string   `json:"recipient"`
	Metadata  Metadata `json:"metadata"`
}

// WalletResponse keeps the payload returned by the wallets endpoint verbatim.
// The decoded fields are for display only.
type WalletResponse struct {
	Raw json.RawMessage `json:"-"`

	Chain     string `json:"chain"`
	PublicKey string `json:"publicKey"`
}

func (w *WalletResponse) UnmarshalJSON(b []byte) error {
	type fields WalletResponse
	var f fields
	// The payload is passed through untouched even when its shape is
	// unexpected.
	_ = json.Unmarshal(b, &f)
	*w = WalletResponse(f)
	w.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (w WalletResponse) MarshalJSON() ([]byte, error) {
	return marshalRaw(w.Raw)
}

// MintResponse keeps the payload returned by the mint endpoint verbatim.
// The decoded fields are for display only.
type MintResponse struct {
	Raw json.RawMessage `json:"-"`

	ID      string `json:"id"`
	OnChain struct {
		Status string `json:"status"`
		Chain  string `json:"chain"`
	} `json:"onChain"`
}

func (m *MintResponse) UnmarshalJSON(b []byte) error {
	type fields MintResponse
	var f fields
	_ = json.Unmarshal(b, &f)
	*m = MintResponse(f)
	m.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (m MintResponse) MarshalJSON() ([]byte, error) {
	return marshalRaw(m.Raw)
}

func marshalRaw(raw json.RawMessage) ([]byte, error) {
	if len(raw) == 0 {
		return []byte("null"), nil
	}
	return raw, nil
}
