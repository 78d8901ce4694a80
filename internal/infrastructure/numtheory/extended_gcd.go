package numtheory

import "math/big"

// bezoutRow is one (x, y, r) row of the extended Euclidean table with
// A*x + B*y = r.
type bezoutRow struct {
	x, y, r *big.Int
}

// minus returns row - q*other as a new row.
func (row bezoutRow) minus(q *big.Int, other bezoutRow) bezoutRow {
	x := new(big.Int).Mul(q, other.x)
	y := new(big.Int).Mul(q, other.y)
	r := new(big.Int).Mul(q, other.r)
	return bezoutRow{
		x: x.Sub(row.x, x),
		y: y.Sub(row.y, y),
		r: r.Sub(row.r, r),
	}
}

// ExtendedGCD returns x, y and gcd with a*x + b*y = gcd.
//
// a and b must be non-negative. The table runs on the larger operand first and
// the coefficients are swapped back so that x always belongs to a and y to b.
func ExtendedGCD(a, b *big.Int) (x, y, gcd *big.Int) {
	swapped := a.Cmp(b) <= 0
	larger, smaller := a, b
	if swapped {
		larger, smaller = b, a
	}

	prev := bezoutRow{x: big.NewInt(1), y: big.NewInt(0), r: new(big.Int).Set(larger)}
	curr := bezoutRow{x: big.NewInt(0), y: big.NewInt(1), r: new(big.Int).Set(smaller)}

	q := new(big.Int)
	for curr.r.Sign() != 0 {
		q.Quo(prev.r, curr.r)
		prev, curr = curr, prev.minus(q, curr)
	}

	if swapped {
		return prev.y, prev.x, prev.r
	}
	return prev.x, prev.y, prev.r
}

// ModInverse returns the d in [0, m) with a*d ≡ 1 (mod m).
// The boolean is false when gcd(a, m) != 1 and no inverse exists.
func ModInverse(a, m *big.Int) (*big.Int, bool) {
	x, _, gcd := ExtendedGCD(a, m)
	if !IsOne(gcd) {
		return nil, false
	}
	// big.Int.Mod is Euclidean, so a negative coefficient lands in [0, m).
	return x.Mod(x, m), true
}
