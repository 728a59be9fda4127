// Package pkcs8 wraps algorithm specific private keys in the RFC 5958
// OneAsymmetricKey (PKCS#8 v1) container:
//
//	OneAsymmetricKey ::= SEQUENCE {
//	  version              INTEGER,
//	  privateKeyAlgorithm  AlgorithmIdentifier,
//	  privateKey           OCTET STRING }
package pkcs8

import (
	"fmt"

	"genkey/internal/domain"
	"genkey/internal/format/der"
)

// Version1 is the only version genkey emits; it carries no public key.
const Version1 byte = 0

// Marshal returns the DER encoding of key's PKCS#8 container.
func Marshal(key domain.PKCS8Key) ([]byte, error) {
	priv, err := key.PrivateKeyDER()
	if err != nil {
		return nil, fmt.Errorf("pkcs8: private key: %w", err)
	}
	version, err := der.Encode(der.TagInteger, []byte{Version1})
	if err != nil {
		return nil, err
	}
	octets, err := der.Encode(der.TagOctetString, priv)
	if err != nil {
		return nil, fmt.Errorf("pkcs8: private key octets: %w", err)
	}
	return der.Sequence(version, key.AlgorithmIdentifier(), octets)
}
