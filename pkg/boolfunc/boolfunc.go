// Package boolfunc derives the eight output-bit Boolean functions of an
// S-box and memoises them (C2). Each function's 256-entry truth table is
// built lazily, at most once, the first time its output bit is requested —
// the same at-most-once shape the teacher uses to derive an F-function from
// a key on first use (pkg/pos/fx.go's NewFx).
package boolfunc

import (
	"sync"

	"github.com/kargakis/sboxlab/pkg/parameters"
	"github.com/kargakis/sboxlab/pkg/sbox"
)

// Table is a 256-entry truth table; Table[x] is the single output bit
// (0 or 1) of the Boolean function at input x.
type Table [parameters.TableSize]byte

// Cache memoises the eight per-output-bit truth tables of an S-box.
// A Cache is safe for concurrent use: at most one goroutine builds any
// given bit's table (spec.md section 5, "at-most-once initialisation").
type Cache struct {
	s     sbox.SBox
	once  [parameters.OutputBits]sync.Once
	table [parameters.OutputBits]Table
}

// New returns a Cache over s. s is copied by value (SBox already copies its
// backing array), so the cache is safe to keep after the caller's own copy
// goes away.
func New(s sbox.SBox) *Cache {
	return &Cache{s: s}
}

// Bit returns the truth table of output bit i (0 = LSB, 7 = MSB), building
// it on first request.
func (c *Cache) Bit(i int) Table {
	c.once[i].Do(func() {
		var t Table
		for x := 0; x < parameters.TableSize; x++ {
			t[x] = (c.s.At(byte(x)) >> uint(i)) & 1
		}
		c.table[i] = t
	})
	return c.table[i]
}

// XOR returns the truth table of f_i XOR f_j, the combined output used by
// the Bit-Independence-Criterion metrics (spec.md section 4.6).
func (c *Cache) XOR(i, j int) Table {
	a, b := c.Bit(i), c.Bit(j)
	var t Table
	for x := range t {
		t[x] = a[x] ^ b[x]
	}
	return t
}
