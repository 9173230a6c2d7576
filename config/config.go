// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/walletmint/walletmint/consts"
	"github.com/walletmint/walletmint/utils"
)

const (
	configName  = "config"
	configType  = "yaml"
	dirName     = ".walletmint-cli"
	envPrefix   = "WALLETMINT"
	fsModeWrite = 0o600
)

// Persistent keys. Each is also the name of the flag that overrides it.
const (
	KeyAPIKey   = "apiKey"
	KeyEndpoint = "endpoint"
	KeyChain    = "chain"
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
)

var (
	Keys = []string{KeyAPIKey, KeyEndpoint, KeyChain, KeyOutput, KeyLogLevel}

	ErrUnknownKey = errors.New("unknown config key")
)

type Config struct {
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
	Chain    string `json:"chain" yaml:"chain"`
	Output   string `json:"output" yaml:"output"`
	LogLevel string `json:"logLevel" yaml:"logLevel"`
}

// Masked returns a copy that is safe to print.
func (c Config) Masked() Config {
	c.APIKey = utils.MaskSecret(c.APIKey)
	return c
}

// Store resolves settings from flags, WALLETMINT_* environment variables,
// the config file and defaults, in that order.
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultDir is ~/.walletmint-cli.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName), nil
}

// Open reads (creating it when missing) the config file inside [dir].
func Open(dir string) (*Store, error) {
	configDir, err := utils.InitSubDirectory(filepath.Dir(dir), filepath.Base(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}
	configFile := filepath.Join(configDir, configName+"."+configType)
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, nil, fsModeWrite); err != nil {
			return nil, fmt.Errorf("failed to create config file: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &Store{v: v, path: configFile}, nil
}

func (s *Store) Path() string {
	return s.path
}

// BindFlags lets explicitly set flags in [flags] win over the file. Flags
// that are not present in [flags] are skipped.
func (s *Store) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := s.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func (s *Store) Get(key string) string {
	return strings.TrimSpace(s.v.GetString(key))
}

// Load resolves every key. Defaults are applied here rather than registered
// with viper so that [Store.Set] only ever writes explicit values.
func (s *Store) Load() Config {
	return Config{
		APIKey:   s.Get(KeyAPIKey),
		Endpoint: s.getDefault(KeyEndpoint, consts.DefaultEndpoint),
		Chain:    s.getDefault(KeyChain, consts.DefaultChain),
		Output:   s.getDefault(KeyOutput, consts.DefaultOutput),
		LogLevel: s.getDefault(KeyLogLevel, consts.DefaultLogLevel),
	}
}

func (s *Store) getDefault(key, def string) string {
	if v := s.Get(key); v != "" {
		return v
	}
	return def
}

// Set persists [value] under [key] in the config file.
func (s *Store) Set(key, value string) error {
	if !isKey(key) {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys, ", "))
	}
	// Write through a file-only view so flag and environment values are
	// never persisted.
	file := viper.New()
	file.SetConfigFile(s.path)
	file.SetConfigType(configType)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	file.Set(key, value)
	if err := file.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return s.v.ReadInConfig()
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
