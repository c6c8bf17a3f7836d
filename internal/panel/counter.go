package panel

import (
	"math"
	"strconv"
)

// Counter is the panel's only state: a non-negative count of activations.
// The zero value is the initial state.
type Counter uint64

// Increment returns c+1. At math.MaxUint64 it saturates rather than wrap,
// so the count never goes backwards.
func (c Counter) Increment() Counter {
	if c == math.MaxUint64 {
		return c
	}
	return c + 1
}

func (c Counter) String() string {
	return strconv.FormatUint(uint64(c), 10)
}
