// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mint

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/walletmint/walletmint/crossmint"
)

// ConfirmFunc is consulted after the wallet exists and before anything is
// minted. Returning false ends the run without minting.
type ConfirmFunc func(recipient string, metadata crossmint.Metadata) (bool, error)

// RunRecorder is told the terminal state of every run.
type RunRecorder interface {
	RecordRun(state string)
}

type Outcome struct {
	State  State                     `json:"state" yaml:"state"`
	Wallet *crossmint.WalletResponse `json:"wallet,omitempty" yaml:"-"`
	Mint   *crossmint.MintResponse   `json:"mint,omitempty" yaml:"-"`
}

func (o *Outcome) Succeeded() bool {
	return o.State == MintOK
}

type Option func(*Orchestrator)

func WithConfirm(f ConfirmFunc) Option {
	return func(o *Orchestrator) {
		o.confirm = f
	}
}

func WithRecorder(r RunRecorder) Option {
	return func(o *Orchestrator) {
		o.recorder = r
	}
}

// Orchestrator provisions the wallet and, only if that succeeded, mints into
// it. Both steps run strictly one after the other.
type Orchestrator struct {
	log    logging.Logger
	tracer trace.Tracer

	wallets *Provisioner
	minter  *Minter

	confirm  ConfirmFunc
	recorder RunRecorder
}

func NewOrchestrator(
	log logging.Logger,
	tracer trace.Tracer,
	wallets WalletAPI,
	mints MintAPI,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		log:     log,
		tracer:  tracer,
		wallets: NewProvisioner(log, tracer, wallets),
		minter:  NewMinter(log, tracer, mints),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Orchestrator) Provisioner() *Provisioner {
	return o.wallets
}

func (o *Orchestrator) Minter() *Minter {
	return o.minter
}

// Run drives a single wallet-then-mint run. The returned outcome is never
// nil. The error wraps [ErrWalletFailed] or [ErrMintFailed] depending on which
// step failed.
func (o *Orchestrator) Run(ctx context.Context, p Params) (*Outcome, error) {
	ctx, span := o.tracer.Start(ctx, "walletmint.Run")
	defer span.End()

	out := &Outcome{State: Start}
	defer func() {
		span.SetAttributes(attribute.String("state", out.State.String()))
		if o.recorder != nil {
			o.recorder.RecordRun(out.State.String())
		}
	}()

	out.State = WalletRequested
	wallet, err := o.wallets.ProvisionWallet(ctx, p.Email, p.Chain)
	if err != nil {
		out.State = WalletFailed
		o.log.Error("error creating wallet, exiting")
		return out, fmt.Errorf("%w: %w", ErrWalletFailed, err)
	}
	out.State = WalletOK
	out.Wallet = wallet

	recipient := p.Recipient()
	metadata := p.Metadata()
	if o.confirm != nil {
		ok, err := o.confirm(recipient, metadata)
		if err != nil {
			out.State = MintSkipped
			return out, fmt.Errorf("failed to confirm mint: %w", err)
		}
		if !ok {
			out.State = MintSkipped
			o.log.Info("mint declined, exiting", zap.String("recipient", recipient))
			return out, nil
		}
	}

	out.State = MintRequested
	nft, err := o.minter.MintNFT(ctx, p.CollectionID, recipient, metadata)
	if err != nil {
		out.State = MintFailed
		o.log.Error("error minting NFT, exiting")
		return out, fmt.Errorf("%w: %w", ErrMintFailed, err)
	}
	out.State = MintOK
	out.Mint = nft
	return out, nil
}
