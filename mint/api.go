// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/walletmint/walletmint/crossmint"
	"github.com/walletmint/walletmint/requester"
)

//go:generate go run go.uber.org/mock/mockgen -package=mint -destination=mock_api.go . WalletAPI,MintAPI

var (
	_ WalletAPI = (*crossmint.Client)(nil)
	_ MintAPI   = (*crossmint.Client)(nil)
)

type WalletAPI interface {
	CreateWallet(ctx context.Context, req crossmint.WalletRequest) (*crossmint.WalletResponse, error)
}

type MintAPI interface {
	MintNFT(ctx context.Context, collectionID string, req crossmint.MintRequest) (*crossmint.MintResponse, error)
}

// errorFields keeps the status code and body of a rejected request in the
// log line.
func errorFields(err error) []zap.Field {
	fields := []zap.Field{zap.Error(err)}
	var statusErr *requester.StatusError
	if errors.As(err, &statusErr) {
		fields = append(fields,
			zap.Int("status", statusErr.StatusCode),
			zap.String("body", statusErr.Body),
		)
	}
	return fields
}
