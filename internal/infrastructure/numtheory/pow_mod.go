package numtheory

import "math/big"

// PowMod returns base^exponent mod modulus using right-to-left
// square-and-multiply. A nil modulus computes the unreduced power.
//
// The exponent must be non-negative and a non-nil modulus must be positive;
// both are programmer errors and panic, as math/big does on division by zero.
// None of the arguments are modified.
func PowMod(base, exponent, modulus *big.Int) *big.Int {
	if exponent.Sign() < 0 {
		panic("numtheory: negative exponent")
	}
	if modulus != nil && modulus.Sign() <= 0 {
		panic("numtheory: modulus must be positive")
	}

	acc := big.NewInt(1)
	square := new(big.Int).Set(base)
	if modulus != nil {
		square.Mod(square, modulus)
	}

	// Walk the exponent bit by bit instead of halving a copy of it.
	bits := exponent.BitLen()
	for i := 0; i < bits; i++ {
		if exponent.Bit(i) == 1 {
			acc.Mul(acc, square)
			if modulus != nil {
				acc.Mod(acc, modulus)
			}
		}
		if i+1 < bits {
			square.Mul(square, square)
			if modulus != nil {
				square.Mod(square, modulus)
			}
		}
	}

	// exponent == 0 leaves acc at 1, which still has to be reduced for modulus 1.
	if modulus != nil {
		acc.Mod(acc, modulus)
	}
	return acc
}
