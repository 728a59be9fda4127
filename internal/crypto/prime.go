package crypto

import (
	"io"
	"math/big"
)

// millerRabinRounds bounds the false positive rate by 4^-64.
const millerRabinRounds = 64

// smallPrimes holds the 168 primes below 1000.
var smallPrimes = [168]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
	101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151, 157, 163, 167, 173, 179, 181, 191, 193,
	197, 199, 211, 223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293, 307,
	311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383, 389, 397, 401, 409, 419, 421,
	431, 433, 439, 443, 449, 457, 461, 463, 467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547,
	557, 563, 569, 571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647, 653, 659,
	661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743, 751, 757, 761, 769, 773, 787, 797,
	809, 811, 821, 823, 827, 829, 839, 853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929,
	937, 941, 947, 953, 967, 971, 977, 983, 991, 997,
}

// trialDivisionBound is the square of the largest small prime; anything
// below it that survives trial division is prime.
const trialDivisionBound = 997 * 997

// IsProbablyPrime reports whether n is prime. Small factors are rejected by
// trial division before running Miller-Rabin with 64 bases drawn uniformly
// from [2, n-2] out of r. The only error is a failing random source.
func IsProbablyPrime(r io.Reader, n *big.Int) (bool, error) {
	if n.Cmp(bigTwo) < 0 {
		return false, nil
	}
	if n.IsUint64() && n.Uint64() <= smallPrimes[len(smallPrimes)-1] {
		v := n.Uint64()
		for _, p := range smallPrimes {
			if v == p {
				return true, nil
			}
		}
		return false, nil
	}

	rem := new(big.Int)
	div := new(big.Int)
	for _, p := range smallPrimes {
		if rem.Mod(n, div.SetUint64(p)).Sign() == 0 {
			return false, nil
		}
	}
	if n.IsUint64() && n.Uint64() < trialDivisionBound {
		return true, nil
	}

	// n-1 = d * 2^k with d odd.
	nMinus1 := new(big.Int).Sub(n, bigOne)
	k := nMinus1.TrailingZeroBits()
	d := new(big.Int).Rsh(nMinus1, k)
	hi := new(big.Int).Sub(n, bigTwo)

witness:
	for i := 0; i < millerRabinRounds; i++ {
		a, err := randInt(r, bigTwo, hi)
		if err != nil {
			return false, err
		}
		x := ModPow(a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		for j := uint(1); j < k; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				continue witness
			}
			if x.Cmp(bigOne) == 0 {
				return false, nil
			}
		}
		return false, nil
	}
	return true, nil
}
