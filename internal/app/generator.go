package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"genkey/internal/crypto"
	"genkey/internal/domain"
	"genkey/internal/format/armor"
	"genkey/internal/format/openssh"
	"genkey/internal/format/pkcs8"
)

// Generator builds keys from a Config.
type Generator struct {
	rand io.Reader
	log  *slog.Logger
}

// Result is the output of one run.
type Result struct {
	Algorithm   domain.Algorithm
	Format      domain.Format
	PrivateKey  []byte // PEM
	PublicKey   []byte // authorized_keys line
	Fingerprint domain.Fingerprint
}

// Wipe zeroes the private key PEM.
func (r *Result) Wipe() { crypto.Wipe(r.PrivateKey) }

// New returns a Generator reading randomness from rand. A nil log
// discards diagnostics.
func New(rand io.Reader, log *slog.Logger) *Generator {
	if log == nil {
		log = discardLogger()
	}
	return &Generator{rand: rand, log: log}
}

// Generate validates cfg, creates a key and serializes it.
func (g *Generator) Generate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Comment != "" && cfg.Format == domain.FormatPKCS8 {
		g.log.Warn("comment is not stored in pkcs8 keys", "comment", cfg.Comment)
	}

	g.log.Debug("generating key", "algorithm", cfg.Algorithm, "format", cfg.Format)
	start := time.Now()
	key, err := g.newKey(cfg)
	if err != nil {
		return nil, err
	}
	g.log.Debug("key material ready", "algorithm", cfg.Algorithm, "elapsed", time.Since(start))

	priv, err := g.encode(key, cfg)
	if err != nil {
		return nil, err
	}
	pub, err := crypto.AuthorizedKey(key, cfg.Comment)
	if err != nil {
		return nil, err
	}
	fp, err := crypto.Fingerprint(key)
	if err != nil {
		return nil, err
	}

	g.log.Info("key generated",
		"algorithm", cfg.Algorithm,
		"format", cfg.Format,
		"fingerprint", fp,
		"elapsed", time.Since(start),
	)
	return &Result{
		Algorithm:   cfg.Algorithm,
		Format:      cfg.Format,
		PrivateKey:  priv,
		PublicKey:   pub,
		Fingerprint: fp,
	}, nil
}

func (g *Generator) newKey(cfg Config) (domain.PrivateKey, error) {
	switch cfg.Algorithm {
	case domain.AlgorithmRSA:
		k, err := crypto.GenerateRSA2048(g.rand)
		if err != nil {
			return nil, fmt.Errorf("generate rsa key: %w", err)
		}
		return k, nil
	case domain.AlgorithmEd25519:
		return g.newEd25519(cfg)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAlgorithm, cfg.Algorithm)
}

func (g *Generator) newEd25519(cfg Config) (*crypto.Ed25519Key, error) {
	var (
		seed []byte
		err  error
	)
	switch {
	case cfg.Seed != "":
		g.log.Debug("using ed25519 seed from hex")
		seed, err = crypto.Ed25519SeedFromHex(cfg.Seed)
	case cfg.Mnemonic != "":
		g.log.Debug("deriving ed25519 seed from mnemonic")
		seed, err = crypto.Ed25519SeedFromMnemonic(cfg.Mnemonic, "")
	default:
		k, err := crypto.GenerateEd25519(g.rand)
		if err != nil {
			return nil, fmt.Errorf("generate ed25519 key: %w", err)
		}
		return k, nil
	}
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(seed)
	return crypto.NewEd25519FromSeed(seed)
}

// encode serializes key into the configured container and armors it.
func (g *Generator) encode(key domain.PrivateKey, cfg Config) ([]byte, error) {
	switch cfg.Format {
	case domain.FormatPKCS8:
		der, err := pkcs8.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encode pkcs8: %w", err)
		}
		defer crypto.Wipe(der)
		return armor.PKCS8(der), nil
	case domain.FormatOpenSSH:
		blob, err := openssh.Marshal(key, cfg.Comment, g.rand)
		if err != nil {
			return nil, fmt.Errorf("encode openssh: %w", err)
		}
		defer crypto.Wipe(blob)
		return armor.OpenSSH(blob), nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, cfg.Format)
}
