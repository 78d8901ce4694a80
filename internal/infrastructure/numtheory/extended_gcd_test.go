//go:build unit
// +build unit

package numtheory

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/textbook-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertBezout(t *testing.T, a, b *big.Int) {
	t.Helper()

	x, y, gcd := ExtendedGCD(a, b)

	lhs := new(big.Int).Mul(a, x)
	lhs.Add(lhs, new(big.Int).Mul(b, y))
	assert.Equal(t, 0, lhs.Cmp(gcd), "a*x + b*y != gcd for a=%s b=%s", a, b)
	assert.Equal(t, 0, gcd.Cmp(new(big.Int).GCD(nil, nil, a, b)), "wrong gcd for a=%s b=%s", a, b)
}

func TestExtendedGCD_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		gcd  int64
	}{
		{"larger first", 240, 46, 2},
		{"smaller first", 46, 240, 2},
		{"coprime", 65537, 3120, 1},
		{"coprime reversed", 3120, 65537, 1},
		{"equal operands", 12, 12, 12},
		{"second is zero", 17, 0, 17},
		{"first is zero", 0, 17, 17},
		{"both zero", 0, 0, 0},
		{"one divides other", 7, 49, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := big.NewInt(tt.a), big.NewInt(tt.b)
			_, _, gcd := ExtendedGCD(a, b)
			assert.Equal(t, tt.gcd, gcd.Int64())

			x, y, _ := ExtendedGCD(a, b)
			assert.Equal(t, tt.gcd, tt.a*x.Int64()+tt.b*y.Int64())
		})
	}
}

func TestExtendedGCD_RandomPairs(t *testing.T) {
	random := testutil.NewDeterministicReader(42)

	for i := 0; i < 200; i++ {
		a, err := RandomOddCandidate(random, 64+i)
		require.NoError(t, err)
		b, err := RandomOddCandidate(random, 300-i)
		require.NoError(t, err)

		// Clear the low bit sometimes so that even operands and gcd > 1 show up.
		if i%3 == 0 {
			a.SetBit(a, 0, 0)
			b.SetBit(b, 0, 0)
		}

		assertBezout(t, a, b)
		assertBezout(t, b, a)
	}
}

func TestModInverse_Textbook(t *testing.T) {
	// p = 61, q = 53, φ = 3120
	d, ok := ModInverse(big.NewInt(65537), big.NewInt(3120))
	require.True(t, ok)
	assert.Equal(t, int64(2753), d.Int64())

	check := new(big.Int).Mul(big.NewInt(65537), d)
	assert.Equal(t, int64(1), check.Mod(check, big.NewInt(3120)).Int64())
}

func TestModInverse_NormalizesNegativeCoefficient(t *testing.T) {
	// 3*x + 7*y = 1 is solved with x = -2, the inverse must be 5.
	d, ok := ModInverse(big.NewInt(3), big.NewInt(7))
	require.True(t, ok)
	assert.Equal(t, int64(5), d.Int64())
}

func TestModInverse_NoInverse(t *testing.T) {
	tests := []struct {
		name string
		a, m int64
	}{
		{"shared factor", 6, 9},
		{"zero", 0, 5},
		{"exponent divides totient", 65537, 65537 * 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
			assert.False(t, ok)
			assert.Nil(t, d)
		})
	}
}
