package rng

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	a.IsType(Crypto{}, New(0))

	r1 := New(42)
	r2 := New(42)
	for i := 0; i < 10; i++ {
		a.Equal(r1.Intn(100), r2.Intn(100))
		a.Equal(r1.Float64(), r2.Float64())
		a.Equal(r1.NormFloat64(), r2.NormFloat64())
	}
}
