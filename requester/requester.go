// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/walletmint/walletmint/consts"
)

var (
	ErrMalformedResponse = errors.New("malformed response")
	ErrResponseTooLarge  = errors.New("response too large")
)

// Observer is notified once per request. [code] is 0 when the request never
// produced a response.
type Observer interface {
	Observe(name string, code int, elapsed time.Duration)
}

// StatusError is returned when the remote endpoint answers with a non-2xx
// status code.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status code %d: %s", e.StatusCode, e.Body)
}

// EndpointRequester POSTs JSON documents to paths below a fixed base URI.
type EndpointRequester struct {
	cli      *http.Client
	uri      string
	headers  http.Header
	observer Observer
}

type Option func(*EndpointRequester)

func WithHTTPClient(cli *http.Client) Option {
	return func(r *EndpointRequester) {
		if cli != nil {
			r.cli = cli
		}
	}
}

// WithTimeout bounds every request. A zero duration disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(r *EndpointRequester) {
		cli := *r.cli
		cli.Timeout = timeout
		r.cli = &cli
	}
}

func WithHeader(key, value string) Option {
	return func(r *EndpointRequester) {
		r.headers.Set(key, value)
	}
}

func WithObserver(o Observer) Option {
	return func(r *EndpointRequester) {
		r.observer = o
	}
}

func New(uri string, opts ...Option) *EndpointRequester {
	r := &EndpointRequester{
		cli:     &http.Client{Timeout: consts.DefaultTimeout},
		uri:     strings.TrimSuffix(strings.TrimSpace(uri), "/"),
		headers: http.Header{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (e *EndpointRequester) URI() string {
	return e.uri
}

// SendRequest POSTs [params] as JSON to [path] and decodes the response body
// into [reply]. [name] identifies the call to the observer.
func (e *EndpointRequester) SendRequest(
	ctx context.Context,
	name string,
	path string,
	params interface{},
	reply interface{},
) error {
	start := time.Now()
	code, err := e.send(ctx, path, params, reply)
	if e.observer != nil {
		e.observer.Observe(name, code, time.Since(start))
	}
	return err
}

func (e *EndpointRequester) send(ctx context.Context, path string, params interface{}, reply interface{}) (int, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.uri+path, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range e.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.cli.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to issue request: %w", err)
	}
	defer resp.Body.Close()

	// Read one byte past the cap to tell a full body from a cut one.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, consts.MaxResponseSize+1))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	truncated := len(raw) > consts.MaxResponseSize
	if truncated {
		raw = raw[:consts.MaxResponseSize]
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	if truncated {
		return resp.StatusCode, fmt.Errorf("%w: exceeds %d bytes", ErrResponseTooLarge, consts.MaxResponseSize)
	}
	if reply == nil {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, reply); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return resp.StatusCode, nil
}
