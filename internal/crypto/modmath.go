package crypto

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrNotInvertible is returned when gcd(a, m) != 1 or m <= 1.
var ErrNotInvertible = errors.New("crypto: value has no modular inverse")

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m), computed with the
// iterative extended Euclidean algorithm.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(bigOne) <= 0 {
		return nil, fmt.Errorf("%w: modulus %s", ErrNotInvertible, m)
	}
	// Invariant: oldR ≡ oldS*a and r ≡ s*a (mod m).
	oldR, r := new(big.Int).Mod(a, m), new(big.Int).Set(m)
	oldS, s := big.NewInt(1), big.NewInt(0)
	q, tmp := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		tmp.Mul(q, r)
		tmp.Sub(oldR, tmp)
		oldR, r = r, oldR
		r.Set(tmp)

		tmp.Mul(q, s)
		tmp.Sub(oldS, tmp)
		oldS, s = s, oldS
		s.Set(tmp)
	}
	if oldR.Cmp(bigOne) != 0 {
		return nil, ErrNotInvertible
	}
	for oldS.Sign() < 0 {
		oldS.Add(oldS, m)
	}
	return oldS.Mod(oldS, m), nil
}

// ModPow returns base^exp mod m for exp >= 0 and m > 0 using right-to-left
// binary exponentiation.
func ModPow(base, exp, m *big.Int) *big.Int {
	result := big.NewInt(1)
	if m.Cmp(bigOne) == 0 {
		return result.SetInt64(0)
	}
	b := new(big.Int).Mod(base, m)
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, m)
		}
		b.Mul(b, b)
		b.Mod(b, m)
	}
	return result
}

// randInt returns a uniform integer in [lo, hi] read from r by rejection
// sampling over the bit length of hi-lo.
func randInt(r io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() < 0 {
		return nil, fmt.Errorf("crypto: empty range [%s, %s]", lo, hi)
	}
	bits := span.BitLen()
	if bits == 0 {
		return new(big.Int).Set(lo), nil
	}
	buf := make([]byte, (bits+7)/8)
	mask := byte(0xff >> (8*len(buf) - bits))
	v := new(big.Int)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("crypto: read random: %w", err)
		}
		buf[0] &= mask
		v.SetBytes(buf)
		if v.Cmp(span) <= 0 {
			return v.Add(v, lo), nil
		}
	}
}
