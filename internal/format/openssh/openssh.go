// Package openssh writes unencrypted private keys in the openssh-key-v1
// format described in OpenSSH's PROTOCOL.key:
//
//	"openssh-key-v1\0"
//	string ciphername   ("none")
//	string kdfname      ("none")
//	string kdfoptions   ("")
//	uint32 number of keys (1)
//	string public key blob
//	string private section, padded to the cipher block size
package openssh

import (
	"encoding/binary"
	"fmt"
	"io"

	"genkey/internal/domain"
)

// Magic opens every openssh-key-v1 blob.
const Magic = "openssh-key-v1\x00"

const (
	// CipherNone is the only cipher and KDF name genkey writes.
	CipherNone = "none"
	// BlockSize is the padding block size for the "none" cipher.
	BlockSize = 8
)

// Marshal returns the raw openssh-key-v1 blob for key. A fresh check
// integer is read from r.
func Marshal(key domain.SSHKey, comment string, r io.Reader) ([]byte, error) {
	var ci [4]byte
	if _, err := io.ReadFull(r, ci[:]); err != nil {
		return nil, fmt.Errorf("openssh: check integer: %w", err)
	}
	checkint := binary.BigEndian.Uint32(ci[:])

	priv := Pad(key.PrivateKeyWire(checkint, comment), BlockSize)

	var w Writer
	w.Raw([]byte(Magic)).
		String(CipherNone).
		String(CipherNone).
		String("").
		Uint32(1).
		Bytes(key.PublicKeyWire()).
		Bytes(priv)
	return w.Output(), nil
}

// Pad appends the bytes 1, 2, 3, ... to b until its length is a multiple
// of blockSize.
func Pad(b []byte, blockSize int) []byte {
	for i := byte(1); len(b)%blockSize != 0; i++ {
		b = append(b, i)
	}
	return b
}
