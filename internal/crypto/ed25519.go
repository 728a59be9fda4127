package crypto

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"
	"math/big"

	"genkey/internal/format/der"
	"genkey/internal/format/openssh"
)

const (
	// Ed25519SeedSize is the length of an Ed25519 private key seed.
	Ed25519SeedSize = 32
	// Ed25519PublicKeySize is the length of an encoded public point.
	Ed25519PublicKeySize = 32

	sshEd25519KeyType = "ssh-ed25519"
)

// ErrInvalidSeed is returned for seeds that do not decode to 32 bytes.
var ErrInvalidSeed = errors.New("crypto: ed25519 seed must be 32 bytes")

// ed25519AlgorithmIdentifier is SEQUENCE { OBJECT IDENTIFIER 1.3.101.112 }
// with parameters absent (RFC 8410).
var ed25519AlgorithmIdentifier = []byte{0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70}

// Ed25519Key is an Ed25519 private key. Only the seed is kept; the public
// key is derived when asked for.
type Ed25519Key struct {
	seed [Ed25519SeedSize]byte
}

// GenerateEd25519 returns a key with a seed read from r.
func GenerateEd25519(r io.Reader) (*Ed25519Key, error) {
	k := new(Ed25519Key)
	if _, err := io.ReadFull(r, k.seed[:]); err != nil {
		return nil, fmt.Errorf("ed25519: read seed: %w", err)
	}
	return k, nil
}

// NewEd25519FromSeed returns the key for a 32-byte seed. The seed is copied.
func NewEd25519FromSeed(seed []byte) (*Ed25519Key, error) {
	if len(seed) != Ed25519SeedSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSeed, len(seed))
	}
	k := new(Ed25519Key)
	copy(k.seed[:], seed)
	return k, nil
}

// Seed returns a copy of the private seed.
func (k *Ed25519Key) Seed() [Ed25519SeedSize]byte { return k.seed }

// PublicKey derives the compressed public point A = [s]B (RFC 8032 5.1.5).
func (k *Ed25519Key) PublicKey() [Ed25519PublicKeySize]byte {
	h := sha512.Sum512(k.seed[:])
	s := h[:32]
	clamp(s)

	// s is little-endian.
	reverse(s)
	scalar := new(big.Int).SetBytes(s)
	Wipe(h[:])

	return basePoint.scalarMult(scalar).encode()
}

// clamp clears the cofactor bits and fixes bit 254 of a little-endian
// scalar.
func clamp(s []byte) {
	s[0] &= 248
	s[31] &= 127
	s[31] |= 64
}

// AlgorithmIdentifier returns the id-Ed25519 AlgorithmIdentifier.
func (k *Ed25519Key) AlgorithmIdentifier() []byte {
	return append([]byte(nil), ed25519AlgorithmIdentifier...)
}

// PrivateKeyDER returns CurvePrivateKey ::= OCTET STRING (the seed).
func (k *Ed25519Key) PrivateKeyDER() ([]byte, error) {
	return der.Encode(der.TagOctetString, k.seed[:])
}

// KeyType returns "ssh-ed25519".
func (k *Ed25519Key) KeyType() string { return sshEd25519KeyType }

// PublicKeyWire returns string "ssh-ed25519", string A.
func (k *Ed25519Key) PublicKeyWire() []byte {
	pub := k.PublicKey()
	var w openssh.Writer
	w.String(sshEd25519KeyType).Bytes(pub[:])
	return w.Output()
}

// PrivateKeyWire returns the OpenSSH private section: public point,
// seed||public point, comment.
func (k *Ed25519Key) PrivateKeyWire(checkint uint32, comment string) []byte {
	pub := k.PublicKey()
	priv := make([]byte, 0, Ed25519SeedSize+Ed25519PublicKeySize)
	priv = append(priv, k.seed[:]...)
	priv = append(priv, pub[:]...)

	var w openssh.Writer
	w.Uint32(checkint).Uint32(checkint).
		String(sshEd25519KeyType).
		Bytes(pub[:]).
		Bytes(priv).
		String(comment)
	Wipe(priv)
	return w.Output()
}
