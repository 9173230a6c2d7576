// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/walletmint/walletmint/consts"
)

func TestOpenCreatesConfigFile(t *testing.T) {
	require := require.New(t)

	dir := filepath.Join(t.TempDir(), ".walletmint-cli")
	s, err := Open(dir)
	require.NoError(err)
	require.FileExists(s.Path())

	cfg := s.Load()
	require.Empty(cfg.APIKey)
	require.Equal(consts.DefaultEndpoint, cfg.Endpoint)
	require.Equal(consts.DefaultChain, cfg.Chain)
	require.Equal(consts.DefaultOutput, cfg.Output)
	require.Equal(consts.DefaultLogLevel, cfg.LogLevel)
}

func TestSetPersists(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(err)
	require.NoError(s.Set(KeyAPIKey, "sk_test_abcdef"))
	require.NoError(s.Set(KeyChain, "polygon"))

	reopened, err := Open(dir)
	require.NoError(err)
	cfg := reopened.Load()
	require.Equal("sk_test_abcdef", cfg.APIKey)
	require.Equal("polygon", cfg.Chain)

	raw, err := os.ReadFile(reopened.Path())
	require.NoError(err)
	require.NotContains(string(raw), consts.DefaultEndpoint)
}

func TestSetUnknownKey(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.ErrorIs(t, s.Set("privateKey", "x"), ErrUnknownKey)
}

func TestPrecedence(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(err)
	require.NoError(s.Set(KeyAPIKey, "from-file"))
	require.NoError(s.Set(KeyChain, "from-file"))
	require.NoError(s.Set(KeyOutput, "yaml"))

	t.Setenv("WALLETMINT_APIKEY", "from-env")
	t.Setenv("WALLETMINT_CHAIN", "from-env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyAPIKey, "", "")
	flags.String(KeyChain, consts.DefaultChain, "")
	flags.String(KeyOutput, consts.DefaultOutput, "")
	require.NoError(flags.Parse([]string{"--apiKey", "from-flag"}))

	s, err = Open(dir)
	require.NoError(err)
	require.NoError(s.BindFlags(flags))

	cfg := s.Load()
	require.Equal("from-flag", cfg.APIKey)
	require.Equal("from-env", cfg.Chain)
	require.Equal("yaml", cfg.Output)
}

func TestMasked(t *testing.T) {
	cfg := Config{APIKey: "sk_test_abcdef", Chain: "base"}
	masked := cfg.Masked()
	require.Equal(t, "**********cdef", masked.APIKey)
	require.Equal(t, "base", masked.Chain)
	require.Equal(t, "sk_test_abcdef", cfg.APIKey)
}

func TestSetKeepsEnvironmentOutOfFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	t.Setenv("WALLETMINT_APIKEY", "from-env")
	s, err := Open(dir)
	require.NoError(err)
	require.NoError(s.Set(KeyChain, "polygon"))

	b, err := os.ReadFile(s.Path())
	require.NoError(err)
	require.Contains(string(b), "polygon")
	require.NotContains(string(b), "from-env")
	require.Equal("from-env", s.Load().APIKey)
}
