package numtheory

import "math/big"

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// Equal reports whether x == y.
func Equal(x, y *big.Int) bool {
	return x.Cmp(y) == 0
}

// IsOne reports whether x == 1.
func IsOne(x *big.Int) bool {
	return x.Cmp(one) == 0
}

// IsEven reports whether x is divisible by two.
func IsEven(x *big.Int) bool {
	return x.Bit(0) == 0
}

// Sub1 returns x - 1 as a new value.
func Sub1(x *big.Int) *big.Int {
	return new(big.Int).Sub(x, one)
}
