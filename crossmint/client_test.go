// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crossmint

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/requester"
)

type capturedRequest struct {
	Method string
	Path   string
	APIKey string
	Body   string
}

func newTestServer(t *testing.T, status int, reply string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	captured := []capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		captured = append(captured, capturedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			APIKey: r.Header.Get(consts.APIKeyHeader),
			Body:   string(b),
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestRecipient(t *testing.T) {
	require := require.New(t)

	require.Equal("email:u@x.com:base", Recipient("u@x.com", "base"))
	require.Equal("email:a.b+c@example.org:polygon", Recipient("a.b+c@example.org", "polygon"))
	require.Equal(Recipient("u@x.com", "base"), Recipient("u@x.com", "base"))
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestCreateWallet(t *testing.T) {
	require := require.New(t)

	reply := `{"chain":"base","publicKey":"0x1234","extra":{"nested":true}}`
	srv, captured := newTestServer(t, http.StatusOK, reply)

	cli, err := New("K", WithEndpoint(srv.URL))
	require.NoError(err)
	require.Equal(srv.URL, cli.Endpoint())

	resp, err := cli.CreateWallet(context.Background(), WalletRequest{Email: "u@x.com", Chain: "base"})
	require.NoError(err)
	require.Equal("base", resp.Chain)
	require.Equal("0x1234", resp.PublicKey)
	require.JSONEq(reply, string(resp.Raw))

	b, err := json.Marshal(resp)
	require.NoError(err)
	require.JSONEq(reply, string(b))

	require.Len(*captured, 1)
	req := (*captured)[0]
	require.Equal(http.MethodPost, req.Method)
	require.Equal("/v1-alpha1/wallets", req.Path)
	require.Equal("K", req.APIKey)
	require.JSONEq(`{"email":"u@x.com","chain":"base"}`, req.Body)
}

func TestCreateWalletRejected(t *testing.T) {
	require := require.New(t)

	srv, _ := newTestServer(t, http.StatusUnauthorized, `{"error":"unauthorized"}`)
	cli, err := New("bad", WithEndpoint(srv.URL))
	require.NoError(err)

	resp, err := cli.CreateWallet(context.Background(), WalletRequest{Email: "u@x.com", Chain: "base"})
	require.Nil(resp)

	var statusErr *requester.StatusError
	require.ErrorAs(err, &statusErr)
	require.Equal(http.StatusUnauthorized, statusErr.StatusCode)
}

func TestMintNFT(t *testing.T) {
	require := require.New(t)

	reply := `{"id":"nft-1","onChain":{"status":"pending","chain":"base"}}`
	srv, captured := newTestServer(t, http.StatusOK, reply)
	cli, err := New("K", WithEndpoint(srv.URL+"/"))
	require.NoError(err)

	resp, err := cli.MintNFT(context.Background(), "C1", MintRequest{
		Recipient: Recipient("u@x.com", "base"),
		Metadata: Metadata{
			Name:        consts.DefaultNFTName,
			Image:       consts.DefaultImageURL,
			Description: consts.DefaultDescription,
		},
	})
	require.NoError(err)
	require.Equal("nft-1", resp.ID)
	require.Equal("pending", resp.OnChain.Status)
	require.JSONEq(reply, string(resp.Raw))

	require.Len(*captured, 1)
	req := (*captured)[0]
	require.Equal("/2022-06-09/collections/C1/nfts", req.Path)
	require.Equal("K", req.APIKey)
	require.JSONEq(`{
		"recipient": "email:u@x.com:base",
		"metadata": {
			"name": "Crossmint Example NFT",
			"image": "https://www.crossmint.com/assets/crossmint/logo.png",
			"description": "My NFT created via the mint API!"
		}
	}`, req.Body)
}

func TestMintNFTRequiresCollection(t *testing.T) {
	require := require.New(t)

	srv, captured := newTestServer(t, http.StatusOK, `{}`)
	cli, err := New("K", WithEndpoint(srv.URL))
	require.NoError(err)

	resp, err := cli.MintNFT(context.Background(), "", MintRequest{})
	require.ErrorIs(err, ErrMissingCollectionID)
	require.Nil(resp)
	require.Empty(*captured)
}

func TestMintPathEscapesCollection(t *testing.T) {
	require.Equal(t, "/2022-06-09/collections/a%2Fb/nfts", MintPath("a/b"))
	require.Equal(t, "/2022-06-09/collections/default-solana/nfts", MintPath("default-solana"))
}

func TestEmptySuccessPayloadIsAResult(t *testing.T) {
	require := require.New(t)

	srv, _ := newTestServer(t, http.StatusCreated, `{}`)
	cli, err := New("K", WithEndpoint(srv.URL))
	require.NoError(err)

	resp, err := cli.CreateWallet(context.Background(), WalletRequest{Email: "u@x.com", Chain: "base"})
	require.NoError(err)
	require.NotNil(resp)
	require.JSONEq(`{}`, string(resp.Raw))
}
