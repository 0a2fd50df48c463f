package rng

import (
	"crypto/rand"
	"math"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// float64 mantissa
const maxFloatBits = 1 << 53

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Float64 returns a random number in [0.0, 1.0)
func (c Crypto) Float64() float64 {
	return float64(c.Intn(maxFloatBits)) / maxFloatBits
}

// NormFloat64 returns a standard normal sample using the Box-Muller transform
func (c Crypto) NormFloat64() float64 {
	u1 := c.Float64()
	for u1 == 0 {
		u1 = c.Float64()
	}

	u2 := c.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}
