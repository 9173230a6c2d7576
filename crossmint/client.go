// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crossmint

import (
	"context"
	"errors"
	"net/url"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/requester"
)

const (
	walletName = "wallet"
	mintName   = "mint"
)

var (
	ErrMissingAPIKey       = errors.New("api key is required")
	ErrMissingCollectionID = errors.New("collection id is required")
)

// Client talks to the wallets and collections endpoints. Every request carries
// the API key.
type Client struct {
	requester *requester.EndpointRequester
}

func New(apiKey string, opts ...Opt) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	o := NewDefaultOptions()
	NewOpt(opts...).Apply(o)

	reqOpts := []requester.Option{
		requester.WithHTTPClient(o.HTTPClient),
		requester.WithTimeout(o.Timeout),
		requester.WithHeader(consts.APIKeyHeader, apiKey),
	}
	if o.Observer != nil {
		reqOpts = append(reqOpts, requester.WithObserver(o.Observer))
	}
	return &Client{
		requester: requester.New(o.Endpoint, reqOpts...),
	}, nil
}

func (c *Client) Endpoint() string {
	return c.requester.URI()
}

// CreateWallet creates the custodial wallet owned by [req.Email] on
// [req.Chain] or returns the existing one.
func (c *Client) CreateWallet(ctx context.Context, req WalletRequest) (*WalletResponse, error) {
	resp := new(WalletResponse)
	if err := c.requester.SendRequest(ctx, walletName, consts.WalletsPath, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MintNFT mints a single NFT into [collectionID]. Repeating the call mints
// again.
func (c *Client) MintNFT(ctx context.Context, collectionID string, req MintRequest) (*MintResponse, error) {
	if collectionID == "" {
		return nil, ErrMissingCollectionID
	}
	resp := new(MintResponse)
	if err := c.requester.SendRequest(ctx, mintName, MintPath(collectionID), req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MintPath is the collection scoped mint path, relative to the API base.
func MintPath(collectionID string) string {
	return consts.CollectionsPath + "/" + url.PathEscape(collectionID) + consts.NFTsPath
}
