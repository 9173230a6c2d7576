// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/crossmint"
	"github.com/walletmint/walletmint/requester"
)

var errConnectionRefused = errors.New("connection refused")

type stateRecorder struct {
	states []string
}

func (s *stateRecorder) RecordRun(state string) {
	s.states = append(s.states, state)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newTestLogger() (logging.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return logging.NewLogger("", logging.NewWrappedCore(logging.Verbo, nopCloser{buf}, logging.Plain.ConsoleEncoder())), buf
}

func scenarioParams() Params {
	p := DefaultParams()
	p.Email = "u@x.com"
	p.APIKey = "K"
	p.CollectionID = "C1"
	return p
}

func walletResponse(t *testing.T, raw string) *crossmint.WalletResponse {
	resp := new(crossmint.WalletResponse)
	require.NoError(t, json.Unmarshal([]byte(raw), resp))
	return resp
}

func mintResponse(t *testing.T, raw string) *crossmint.MintResponse {
	resp := new(crossmint.MintResponse)
	require.NoError(t, json.Unmarshal([]byte(raw), resp))
	return resp
}

func TestRunMintsIntoSynthesizedRecipient(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	wallets := NewMockWalletAPI(ctrl)
	mints := NewMockMintAPI(ctrl)
	wallet := walletResponse(t, `{"chain":"base","publicKey":"0xabc"}`)
	nft := mintResponse(t, `{"id":"nft-1"}`)

	gomock.InOrder(
		wallets.EXPECT().
			CreateWallet(gomock.Any(), crossmint.WalletRequest{Email: "u@x.com", Chain: "base"}).
			Return(wallet, nil).
			Times(1),
		mints.EXPECT().
			MintNFT(gomock.Any(), "C1", crossmint.MintRequest{
				Recipient: "email:u@x.com:base",
				Metadata: crossmint.Metadata{
					Name:        consts.DefaultNFTName,
					Image:       consts.DefaultImageURL,
					Description: consts.DefaultDescription,
				},
			}).
			Return(nft, nil).
			Times(1),
	)

	recorder := &stateRecorder{}
	o := NewOrchestrator(logging.NoLog{}, trace.Noop, wallets, mints, WithRecorder(recorder))
	out, err := o.Run(context.Background(), scenarioParams())
	require.NoError(err)
	require.True(out.Succeeded())
	require.Equal(MintOK, out.State)
	require.Equal(wallet, out.Wallet)
	require.Equal(nft, out.Mint)
	require.Equal([]string{"mint_ok"}, recorder.states)
}

func TestRunRecipientIgnoresWalletAddress(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	wallets := NewMockWalletAPI(ctrl)
	mints := NewMockMintAPI(ctrl)
	wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).
		Return(walletResponse(t, `{"publicKey":"0xdeadbeef","chain":"polygon"}`), nil)

	var got crossmint.MintRequest
	mints.EXPECT().MintNFT(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req crossmint.MintRequest) (*crossmint.MintResponse, error) {
			got = req
			return mintResponse(t, `{}`), nil
		})

	_, err := NewOrchestrator(logging.NoLog{}, trace.Noop, wallets, mints).Run(context.Background(), scenarioParams())
	require.NoError(err)
	require.Equal("email:u@x.com:base", got.Recipient)
}

func TestRunWalletFailureSkipsMint(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "remote rejection",
			err:  &requester.StatusError{StatusCode: http.StatusUnauthorized, Body: `{"error":"unauthorized"}`},
		},
		{
			name: "transport error",
			err:  errConnectionRefused,
		},
		{
			name: "malformed response",
			err:  requester.ErrMalformedResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			wallets := NewMockWalletAPI(ctrl)
			mints := NewMockMintAPI(ctrl)
			wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)
			mints.EXPECT().MintNFT(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			log, buf := newTestLogger()
			recorder := &stateRecorder{}
			o := NewOrchestrator(log, trace.Noop, wallets, mints, WithRecorder(recorder))

			out, err := o.Run(context.Background(), scenarioParams())
			require.ErrorIs(err, ErrWalletFailed)
			require.ErrorIs(err, tt.err)
			require.NotErrorIs(err, ErrMintFailed)
			require.Equal(WalletFailed, out.State)
			require.True(out.State.Terminal())
			require.Nil(out.Wallet)
			require.Nil(out.Mint)
			require.Equal([]string{"wallet_failed"}, recorder.states)

			logs := buf.String()
			require.Contains(logs, "failed to create wallet")
			require.Contains(logs, "error creating wallet, exiting")
			require.NotContains(logs, "minting NFT")
		})
	}
}

func TestRunWalletRejectionLogsStatusAndBody(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	wallets := NewMockWalletAPI(ctrl)
	wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).
		Return(nil, &requester.StatusError{StatusCode: http.StatusUnauthorized, Body: "invalid api key"})

	log, buf := newTestLogger()
	_, err := NewOrchestrator(log, trace.Noop, wallets, NewMockMintAPI(ctrl)).Run(context.Background(), scenarioParams())
	require.Error(err)
	require.Contains(buf.String(), "401")
	require.Contains(buf.String(), "invalid api key")
}

func TestRunMintFailure(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	wallets := NewMockWalletAPI(ctrl)
	mints := NewMockMintAPI(ctrl)
	wallet := walletResponse(t, `{}`)
	mintErr := &requester.StatusError{StatusCode: http.StatusInternalServerError}
	wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(wallet, nil)
	mints.EXPECT().MintNFT(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, mintErr).Times(1)

	log, buf := newTestLogger()
	recorder := &stateRecorder{}
	out, err := NewOrchestrator(log, trace.Noop, wallets, mints, WithRecorder(recorder)).
		Run(context.Background(), scenarioParams())
	require.ErrorIs(err, ErrMintFailed)
	require.ErrorIs(err, mintErr)
	require.NotErrorIs(err, ErrWalletFailed)
	require.Equal(MintFailed, out.State)
	require.Equal(wallet, out.Wallet)
	require.Nil(out.Mint)
	require.Equal([]string{"mint_failed"}, recorder.states)
	require.Contains(buf.String(), "error minting NFT, exiting")
	require.NotContains(buf.String(), "NFT minted successfully")
}

func TestRunConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		confirm     ConfirmFunc
		mintCalls   int
		expected    State
		expectedErr bool
	}{
		{
			name:      "accepted",
			confirm:   func(string, crossmint.Metadata) (bool, error) { return true, nil },
			mintCalls: 1,
			expected:  MintOK,
		},
		{
			name:     "declined",
			confirm:  func(string, crossmint.Metadata) (bool, error) { return false, nil },
			expected: MintSkipped,
		},
		{
			name:        "prompt failed",
			confirm:     func(string, crossmint.Metadata) (bool, error) { return false, errConnectionRefused },
			expected:    MintSkipped,
			expectedErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			ctrl := gomock.NewController(t)

			wallets := NewMockWalletAPI(ctrl)
			mints := NewMockMintAPI(ctrl)
			wallets.EXPECT().CreateWallet(gomock.Any(), gomock.Any()).Return(walletResponse(t, `{}`), nil)
			mints.EXPECT().MintNFT(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(mintResponse(t, `{}`), nil).
				Times(tt.mintCalls)

			out, err := NewOrchestrator(logging.NoLog{}, trace.Noop, wallets, mints, WithConfirm(tt.confirm)).
				Run(context.Background(), scenarioParams())
			if tt.expectedErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
			require.Equal(tt.expected, out.State)
		})
	}
}
