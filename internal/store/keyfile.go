package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Kind says which half of a key pair a file holds. It decides the file
// mode and the name used in errors.
type Kind int

const (
	PrivateKey Kind = iota
	PublicKey
)

const publicKeySuffix = ".pub"

// ErrUnknownKind is returned for a Kind other than PrivateKey or PublicKey.
var ErrUnknownKind = errors.New("store: unknown key file kind")

// Mode returns 0600 for private keys and 0644 for public keys.
func (k Kind) Mode() os.FileMode {
	switch k {
	case PrivateKey:
		return 0o600
	case PublicKey:
		return 0o644
	}
	return 0
}

func (k Kind) String() string {
	switch k {
	case PrivateKey:
		return "private key"
	case PublicKey:
		return "public key"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// WriteKey atomically replaces path with data, created with kind's mode.
func WriteKey(path string, kind Kind, data []byte) error {
	mode := kind.Mode()
	if mode == 0 {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if err := replaceFile(path, data, mode); err != nil {
		return fmt.Errorf("write %s %s: %w", kind, path, err)
	}
	return nil
}

// PublicKeyPath returns the conventional public key path for a private
// key path, as ssh-keygen names it.
func PublicKeyPath(privatePath string) string {
	return privatePath + publicKeySuffix
}

// replaceFile stages data in a hidden sibling of path and renames it into
// place. The mode is set before any data is written. The staging file is
// removed on any failure.
func replaceFile(path string, data []byte, mode os.FileMode) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = staged.Close()
			_ = os.Remove(staged.Name())
		}
	}()

	if err = staged.Chmod(mode); err != nil {
		return err
	}
	if _, err = staged.Write(data); err != nil {
		return err
	}
	if err = staged.Sync(); err != nil {
		return err
	}
	if err = staged.Close(); err != nil {
		return err
	}
	return os.Rename(staged.Name(), path)
}
