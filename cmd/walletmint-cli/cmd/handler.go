// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/cobra"

	"github.com/walletmint/walletmint/cli/prompt"
	"github.com/walletmint/walletmint/config"
	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/crossmint"
	"github.com/walletmint/walletmint/metrics"
	"github.com/walletmint/walletmint/mint"

	htrace "github.com/walletmint/walletmint/trace"
)

// Handler owns everything a command needs once flags are parsed.
type Handler struct {
	store   *config.Store
	cfg     config.Config
	log     logging.Logger
	logFile io.Closer
	metrics *metrics.Metrics
	tracer  trace.Tracer

	opts *globalOptions

	// replaces the terminal prompt when --confirm is set
	confirm mint.ConfirmFunc
}

type globalOptions struct {
	configDir       string
	timeout         time.Duration
	logFile         string
	metricsFile     string
	traceEndpoint   string
	traceSampleRate float64
	confirm         bool
}

func NewHandler(opts *globalOptions) *Handler {
	return &Handler{opts: opts}
}

// Init is run before every command.
func (h *Handler) Init(cmd *cobra.Command) error {
	dir := h.opts.configDir
	if dir == "" {
		d, err := config.DefaultDir()
		if err != nil {
			return err
		}
		dir = d
	}
	store, err := config.Open(dir)
	if err != nil {
		return err
	}
	if err := store.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	h.store = store
	h.cfg = store.Load()
	h.cfg.Output = strings.ToLower(h.cfg.Output)
	if err := validateOutput(h.cfg.Output); err != nil {
		return err
	}

	h.log, h.logFile, err = newLogger(cmd.ErrOrStderr(), h.cfg.LogLevel, h.opts.logFile)
	if err != nil {
		return err
	}
	h.metrics, err = metrics.New()
	if err != nil {
		return err
	}
	h.tracer, err = htrace.New(&htrace.Config{
		Enabled:         h.opts.traceEndpoint != "",
		Endpoint:        h.opts.traceEndpoint,
		TraceSampleRate: h.opts.traceSampleRate,
		AppName:         consts.Name,
		Agent:           consts.Name,
		Version:         consts.Version,
	})
	return err
}

// Close flushes spans, metrics and logs. It is safe to call when Init never
// ran or failed half way.
func (h *Handler) Close() error {
	var errs []error
	if h.tracer != nil {
		errs = append(errs, h.tracer.Close())
	}
	if h.metrics != nil && h.opts.metricsFile != "" {
		errs = append(errs, h.metrics.WriteFile(h.opts.metricsFile))
	}
	if h.log != nil {
		h.log.Stop()
	}
	if h.logFile != nil {
		errs = append(errs, h.logFile.Close())
	}
	return errors.Join(errs...)
}

func (h *Handler) Client(apiKey string) (*crossmint.Client, error) {
	return crossmint.New(
		apiKey,
		crossmint.WithEndpoint(h.cfg.Endpoint),
		crossmint.WithTimeout(h.opts.timeout),
		crossmint.WithObserver(h.metrics),
	)
}

func (h *Handler) Orchestrator(cli *crossmint.Client) *mint.Orchestrator {
	opts := []mint.Option{mint.WithRecorder(h.metrics)}
	if h.opts.confirm {
		confirm := h.confirm
		if confirm == nil {
			confirm = prompt.Prompter{}.ConfirmMint
		}
		opts = append(opts, mint.WithConfirm(confirm))
	}
	return mint.NewOrchestrator(h.log, h.tracer, cli, cli, opts...)
}

// baseParams fills the persisted settings and defaults.
func (h *Handler) baseParams() mint.Params {
	p := mint.DefaultParams()
	p.APIKey = h.cfg.APIKey
	p.Chain = h.cfg.Chain
	return p
}

func (h *Handler) Output() string {
	return h.cfg.Output
}
