// Package bloom provides approximate set membership using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for chunk ID deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// TestAndAdd reports whether the ID might already be in the filter and
// adds it.
func (f *Filter) TestAndAdd(id string) bool {
	return f.f.TestAndAddString(id)
}

// CountDuplicates returns the estimated number of IDs that repeat an
// earlier one. The estimate may overcount by the false positive rate.
func CountDuplicates(ids []string, fpRate float64) int {
	if len(ids) == 0 {
		return 0
	}
	f := NewFilter(uint(len(ids)), fpRate)
	var n int
	for _, id := range ids {
		if f.TestAndAdd(id) {
			n++
		}
	}
	return n
}
