package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"genkey/internal/domain"
)

const configFileName = "config.yaml"

// Validate errors for option combinations that cannot produce a key.
var (
	ErrSeedWithRSA  = errors.New("seed and mnemonic only apply to ed25519 keys")
	ErrSeedConflict = errors.New("seed and mnemonic are mutually exclusive")
)

// Config holds the options for one generate-and-emit run.
type Config struct {
	Algorithm domain.Algorithm `yaml:"algorithm"`
	Format    domain.Format    `yaml:"format"`
	Comment   string           `yaml:"comment"`  // OpenSSH comment and public key line suffix
	File      string           `yaml:"file"`     // output path; empty means stdout
	Public    bool             `yaml:"public"`   // also emit the authorized_keys line
	Seed      string           `yaml:"seed"`     // hex Ed25519 seed
	Mnemonic  string           `yaml:"mnemonic"` // BIP-39 mnemonic for the Ed25519 seed
}

// DefaultConfig returns an RSA-2048 PKCS#8 run to stdout.
func DefaultConfig() Config {
	return Config{
		Algorithm: domain.AlgorithmRSA,
		Format:    domain.FormatPKCS8,
	}
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/genkey/config.yaml, falling
// back to ~/.config/genkey/config.yaml.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "genkey", configFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "genkey", configFileName), nil
}

// LoadConfig reads a YAML config over the defaults. A missing file is not
// an error; unknown keys are.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalises Algorithm and Format and checks that the options
// fit together.
func (c *Config) Validate() error {
	alg, err := domain.ParseAlgorithm(string(c.Algorithm))
	if err != nil {
		return err
	}
	format, err := domain.ParseFormat(string(c.Format))
	if err != nil {
		return err
	}
	c.Algorithm, c.Format = alg, format

	if c.Seed != "" && c.Mnemonic != "" {
		return ErrSeedConflict
	}
	if alg == domain.AlgorithmRSA && (c.Seed != "" || c.Mnemonic != "") {
		return ErrSeedWithRSA
	}
	return nil
}
