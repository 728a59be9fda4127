package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/hkdf"
)

const hkdfInfoEd25519 = "genkey/ed25519/v1"

// mnemonicEntropyBits gives a 24 word mnemonic.
const mnemonicEntropyBits = 256

// ErrInvalidMnemonic is returned when a mnemonic fails the BIP-39 word list
// or checksum check.
var ErrInvalidMnemonic = errors.New("crypto: invalid mnemonic")

// Ed25519SeedFromHex decodes a 64 character hex seed.
func Ed25519SeedFromHex(s string) ([]byte, error) {
	seed, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(seed) != Ed25519SeedSize {
		Wipe(seed)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeed, len(seed))
	}
	return seed, nil
}

// Ed25519SeedFromMnemonic validates a BIP-39 mnemonic and expands its seed
// into a 32-byte Ed25519 seed with HKDF-SHA256. The same mnemonic and
// passphrase always give the same key.
func Ed25519SeedFromMnemonic(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" || !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	master := bip39.NewSeed(mnemonic, passphrase)
	defer Wipe(master)

	seed := make([]byte, Ed25519SeedSize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, master, nil, []byte(hkdfInfoEd25519)), seed); err != nil {
		return nil, fmt.Errorf("crypto: expand mnemonic seed: %w", err)
	}
	return seed, nil
}

// NewMnemonic returns a fresh 24 word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	defer Wipe(entropy)
	return bip39.NewMnemonic(entropy)
}
