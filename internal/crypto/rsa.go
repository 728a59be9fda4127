package crypto

import (
	"fmt"
	"io"
	"math/big"

	"genkey/internal/format/der"
	"genkey/internal/format/openssh"
)

const (
	// RSAModulusBits is the only modulus size genkey produces.
	RSAModulusBits = 2048
	rsaPrimeBits   = RSAModulusBits / 2

	// RSAPublicExponent is F4.
	RSAPublicExponent = 65537

	sshRSAKeyType = "ssh-rsa"
)

// rsaAlgorithmIdentifier is
//
//	SEQUENCE { OBJECT IDENTIFIER rsaEncryption (1.2.840.113549.1.1.1), NULL }
var rsaAlgorithmIdentifier = []byte{
	0x30, 0x0d,
	0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01,
	0x05, 0x00,
}

// RSAKey is an RSA-2048 private key with its CRT parameters.
type RSAKey struct {
	n, e, d, p, q *big.Int
	dp, dq, qInv  *big.Int
}

// GenerateRSA2048 draws two 1024-bit primes from r and derives the full
// private key. The only errors come from r.
func GenerateRSA2048(r io.Reader) (*RSAKey, error) {
	e := big.NewInt(RSAPublicExponent)

	p, err := randomPrime(r, rsaPrimeBits, e)
	if err != nil {
		return nil, fmt.Errorf("rsa: prime p: %w", err)
	}
	var q *big.Int
	for q == nil || q.Cmp(p) == 0 {
		if q, err = randomPrime(r, rsaPrimeBits, e); err != nil {
			return nil, fmt.Errorf("rsa: prime q: %w", err)
		}
	}
	return newRSAKey(p, q, e)
}

// newRSAKey derives n, d and the CRT values from p, q and e.
func newRSAKey(p, q, e *big.Int) (*RSAKey, error) {
	pMinus1 := new(big.Int).Sub(p, bigOne)
	qMinus1 := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pMinus1, qMinus1)

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("rsa: private exponent: %w", err)
	}
	qInv, err := ModInverse(q, p)
	if err != nil {
		return nil, fmt.Errorf("rsa: coefficient: %w", err)
	}
	return &RSAKey{
		n:    new(big.Int).Mul(p, q),
		e:    new(big.Int).Set(e),
		d:    d,
		p:    new(big.Int).Set(p),
		q:    new(big.Int).Set(q),
		dp:   new(big.Int).Mod(d, pMinus1),
		dq:   new(big.Int).Mod(d, qMinus1),
		qInv: qInv,
	}, nil
}

// randomPrime samples odd bits-wide integers with the top two bits set until
// one is prime and p-1 is coprime to e. Two such primes always multiply to
// exactly 2*bits bits.
func randomPrime(r io.Reader, bits int, e *big.Int) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	p := new(big.Int)
	rem := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read random: %w", err)
		}
		buf[0] &= 0xff >> excess
		p.SetBytes(buf)
		p.SetBit(p, bits-1, 1)
		p.SetBit(p, bits-2, 1)
		p.SetBit(p, 0, 1)

		if rem.Mod(p, e).Cmp(bigOne) == 0 {
			continue
		}
		ok, err := IsProbablyPrime(r, p)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
}

// N returns the modulus.
func (k *RSAKey) N() *big.Int { return new(big.Int).Set(k.n) }

// E returns the public exponent.
func (k *RSAKey) E() *big.Int { return new(big.Int).Set(k.e) }

// D returns the private exponent.
func (k *RSAKey) D() *big.Int { return new(big.Int).Set(k.d) }

// Primes returns p and q.
func (k *RSAKey) Primes() (p, q *big.Int) {
	return new(big.Int).Set(k.p), new(big.Int).Set(k.q)
}

// CRTValues returns d mod (p-1), d mod (q-1) and q^-1 mod p.
func (k *RSAKey) CRTValues() (dp, dq, qInv *big.Int) {
	return new(big.Int).Set(k.dp), new(big.Int).Set(k.dq), new(big.Int).Set(k.qInv)
}

// AlgorithmIdentifier returns the rsaEncryption AlgorithmIdentifier.
func (k *RSAKey) AlgorithmIdentifier() []byte {
	return append([]byte(nil), rsaAlgorithmIdentifier...)
}

// PrivateKeyDER returns the RFC 8017 RSAPrivateKey:
//
//	RSAPrivateKey ::= SEQUENCE {
//	  version, modulus, publicExponent, privateExponent,
//	  prime1, prime2, exponent1, exponent2, coefficient }
func (k *RSAKey) PrivateKeyDER() ([]byte, error) {
	fields := []*big.Int{bigZero, k.n, k.e, k.d, k.p, k.q, k.dp, k.dq, k.qInv}
	elems := make([][]byte, 0, len(fields))
	for _, f := range fields {
		enc, err := der.EncodeInteger(f)
		if err != nil {
			return nil, err
		}
		elems = append(elems, enc)
	}
	return der.Sequence(elems...)
}

// KeyType returns "ssh-rsa".
func (k *RSAKey) KeyType() string { return sshRSAKeyType }

// PublicKeyWire returns string "ssh-rsa", mpint e, mpint n.
func (k *RSAKey) PublicKeyWire() []byte {
	var w openssh.Writer
	w.String(sshRSAKeyType).Bytes(der.BigInt(k.e)).Bytes(der.BigInt(k.n))
	return w.Output()
}

// PrivateKeyWire returns the OpenSSH private section for the key:
// n, e, d, iqmp, p, q followed by the comment.
func (k *RSAKey) PrivateKeyWire(checkint uint32, comment string) []byte {
	var w openssh.Writer
	w.Uint32(checkint).Uint32(checkint).String(sshRSAKeyType)
	for _, f := range []*big.Int{k.n, k.e, k.d, k.qInv, k.p, k.q} {
		w.Bytes(der.BigInt(f))
	}
	w.String(comment)
	return w.Output()
}
