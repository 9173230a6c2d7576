// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/walletmint/walletmint/crossmint"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Minter issues a single NFT into a collection. Calling MintNFT twice with the
// same arguments mints twice.
type Minter struct {
	log    logging.Logger
	tracer trace.Tracer
	api    MintAPI
}

func NewMinter(log logging.Logger, tracer trace.Tracer, api MintAPI) *Minter {
	return &Minter{
		log:    log,
		tracer: tracer,
		api:    api,
	}
}

// MintNFT returns the mint payload or a nil payload and the reason it failed.
// Failures are logged before returning. No retry is attempted.
func (m *Minter) MintNFT(
	ctx context.Context,
	collectionID string,
	recipient string,
	metadata crossmint.Metadata,
) (*crossmint.MintResponse, error) {
	ctx, span := m.tracer.Start(ctx, "walletmint.MintNFT", oteltrace.WithAttributes(
		attribute.String("collectionId", collectionID),
	))
	defer span.End()

	m.log.Info("minting NFT",
		zap.String("collectionId", collectionID),
		zap.String("recipient", recipient),
	)
	nft, err := m.api.MintNFT(ctx, collectionID, crossmint.MintRequest{
		Recipient: recipient,
		Metadata:  metadata,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "mint failed")
		m.log.Error("failed to mint NFT", errorFields(err)...)
		return nil, err
	}
	m.log.Info("NFT minted successfully",
		zap.ByteString("nft", nft.Raw),
	)
	return nft, nil
}
