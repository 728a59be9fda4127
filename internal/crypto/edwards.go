package crypto

import "math/big"

// Curve parameters of edwards25519 (RFC 8032 section 5.1):
// -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255 - 19).
var (
	fieldP = mustBig("57896044618658097711785492504343953926634992332820282019728792003956564819949")
	curveD = mustBig("37095705934669439343138083508754565189542113879843219016388785533085940283555")

	basePoint = edwardsPoint{
		x: mustBig("15112221349535400772501151409588531511454012693041857206046113283949847762202"),
		y: mustBig("46316835694926478169428394003475163141307993866256225615783033603165251855960"),
	}
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("crypto: bad curve constant " + s)
	}
	return v
}

// edwardsPoint is an affine point with coordinates in [0, p).
type edwardsPoint struct {
	x, y *big.Int
}

// add returns p1 + p2 with the complete twisted Edwards addition law
//
//	x3 = (x1*y2 + x2*y1) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 + x1*x2) / (1 - d*x1*x2*y1*y2)
//
// The law is complete for a = -1, so doubling uses it too.
func (p1 edwardsPoint) add(p2 edwardsPoint) edwardsPoint {
	x1y2 := fieldMul(p1.x, p2.y)
	x2y1 := fieldMul(p2.x, p1.y)
	y1y2 := fieldMul(p1.y, p2.y)
	x1x2 := fieldMul(p1.x, p2.x)
	dxy := fieldMul(curveD, fieldMul(x1x2, y1y2))

	xNum := fieldAdd(x1y2, x2y1)
	xDen := fieldAdd(bigOne, dxy)
	yNum := fieldAdd(y1y2, x1x2)
	yDen := fieldSub(bigOne, dxy)

	return edwardsPoint{
		x: fieldMul(xNum, fieldInv(xDen)),
		y: fieldMul(yNum, fieldInv(yDen)),
	}
}

// scalarMult returns [k]p by left-to-right double-and-add. k must be
// non-zero.
func (p edwardsPoint) scalarMult(k *big.Int) edwardsPoint {
	// The leading one bit is consumed by starting from p itself.
	r := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		r = r.add(r)
		if k.Bit(i) == 1 {
			r = r.add(p)
		}
	}
	return r
}

// encode returns the 32-byte compressed form: y little-endian with the low
// bit of x in the top bit of the last byte.
func (p edwardsPoint) encode() [32]byte {
	var out [32]byte
	p.y.FillBytes(out[:])
	reverse(out[:])
	out[31] |= byte(p.x.Bit(0)) << 7
	return out
}

func fieldAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, fieldP)
}

func fieldSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, fieldP)
}

func fieldMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, fieldP)
}

// fieldInv panics on zero; the Edwards denominators 1 ± d*x1*x2*y1*y2 are
// never zero because d is not a square mod p.
func fieldInv(a *big.Int) *big.Int {
	inv, err := ModInverse(a, fieldP)
	if err != nil {
		panic("crypto: edwards25519 denominator is zero")
	}
	return inv
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
