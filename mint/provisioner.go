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

// Provisioner creates, or retrieves, the custodial wallet of an email.
type Provisioner struct {
	log    logging.Logger
	tracer trace.Tracer
	api    WalletAPI
}

func NewProvisioner(log logging.Logger, tracer trace.Tracer, api WalletAPI) *Provisioner {
	return &Provisioner{
		log:    log,
		tracer: tracer,
		api:    api,
	}
}

// ProvisionWallet returns the wallet payload or a nil payload and the reason
// it failed. Failures are logged before returning. No retry is attempted.
func (p *Provisioner) ProvisionWallet(ctx context.Context, email, chain string) (*crossmint.WalletResponse, error) {
	ctx, span := p.tracer.Start(ctx, "walletmint.ProvisionWallet", oteltrace.WithAttributes(
		attribute.String("chain", chain),
	))
	defer span.End()

	p.log.Info("creating wallet",
		zap.String("email", email),
		zap.String("chain", chain),
	)
	wallet, err := p.api.CreateWallet(ctx, crossmint.WalletRequest{
		Email: email,
		Chain: chain,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create wallet failed")
		p.log.Error("failed to create wallet", errorFields(err)...)
		return nil, err
	}
	p.log.Info("wallet created or retrieved successfully",
		zap.ByteString("wallet", wallet.Raw),
	)
	return wallet, nil
}
