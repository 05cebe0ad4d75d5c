package status

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
type Registry struct {
	Bools   *Gauges[atomic.Bool]
	Ints    *Gauges[atomic.Int64]
	Floats  *Gauges[AtomicFloat]
	Strings *Gauges[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   newGauges[atomic.Bool](),
		Ints:    newGauges[atomic.Int64](),
		Floats:  newGauges[AtomicFloat](),
		Strings: newGauges[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len() + r.Strings.Len()
}

// Summary renders every metric under prefix as "key=value" pairs in key order, prefix trimmed
// Empty strings are skipped
func (r *Registry) Summary(prefix string) string {
	var pairs []string
	pairs = r.Bools.appendPairs(pairs, prefix, func(v *atomic.Bool) (string, bool) {
		return strconv.FormatBool(v.Load()), true
	})
	pairs = r.Ints.appendPairs(pairs, prefix, func(v *atomic.Int64) (string, bool) {
		return strconv.FormatInt(v.Load(), 10), true
	})
	pairs = r.Floats.appendPairs(pairs, prefix, func(v *AtomicFloat) (string, bool) {
		return fmt.Sprintf("%.2f", v.Load()), true
	})
	pairs = r.Strings.appendPairs(pairs, prefix, func(v *AtomicString) (string, bool) {
		s := v.Load()
		return s, s != ""
	})

	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
