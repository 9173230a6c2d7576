// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crossmint

import (
	"net/http"
	"time"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/requester"
)

type Options struct {
	Endpoint   string
	HTTPClient *http.Client
	Timeout    time.Duration
	Observer   requester.Observer
}

func NewDefaultOptions() *Options {
	return &Options{
		Endpoint: consts.DefaultEndpoint,
		Timeout:  consts.DefaultTimeout,
	}
}

type Opt interface {
	Apply(*Options)
}

// NewOpt mixes a list of Opt in a new one Opt.
func NewOpt(opts ...Opt) Opt {
	return newFuncOption(func(o *Options) {
		for _, opt := range opts {
			opt.Apply(o)
		}
	})
}

// WithEndpoint overrides the API base URL. Empty values are ignored.
func WithEndpoint(endpoint string) Opt {
	return newFuncOption(func(o *Options) {
		if endpoint != "" {
			o.Endpoint = endpoint
		}
	})
}

func WithHTTPClient(cli *http.Client) Opt {
	return newFuncOption(func(o *Options) {
		o.HTTPClient = cli
	})
}

func WithTimeout(timeout time.Duration) Opt {
	return newFuncOption(func(o *Options) {
		o.Timeout = timeout
	})
}

func WithObserver(observer requester.Observer) Opt {
	return newFuncOption(func(o *Options) {
		o.Observer = observer
	})
}

type funcOption struct {
	f func(*Options)
}

func (fdo *funcOption) Apply(do *Options) {
	fdo.f(do)
}

func newFuncOption(f func(*Options)) *funcOption {
	return &funcOption{
		f: f,
	}
}
