package app

import (
	"fmt"
	"io"

	"genkey/internal/store"
)

// Emit writes res to cfg.File (and its .pub sibling when cfg.Public is
// set), or to stdout when no file is configured. On stdout the public key
// line follows the PEM block.
func Emit(res *Result, cfg Config, stdout io.Writer) error {
	if cfg.File == "" {
		if _, err := stdout.Write(res.PrivateKey); err != nil {
			return fmt.Errorf("write private key: %w", err)
		}
		if cfg.Public {
			if _, err := stdout.Write(res.PublicKey); err != nil {
				return fmt.Errorf("write public key: %w", err)
			}
		}
		return nil
	}

	if err := store.WriteKey(cfg.File, store.PrivateKey, res.PrivateKey); err != nil {
		return err
	}
	if cfg.Public {
		return store.WriteKey(store.PublicKeyPath(cfg.File), store.PublicKey, res.PublicKey)
	}
	return nil
}
