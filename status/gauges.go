package status

import (
	"strings"
	"sync"
)

// Gauges holds named metric cells of one kind
// Systems resolve their cells once at construction and write them without the lock
type Gauges[T any] struct {
	mu    sync.Mutex
	cells map[string]*T
}

func newGauges[T any]() *Gauges[T] {
	return &Gauges[T]{cells: make(map[string]*T)}
}

// Get returns the cell for name, registering it on first use
func (g *Gauges[T]) Get(name string) *T {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.cells[name]; ok {
		return c
	}
	c := new(T)
	g.cells[name] = c
	return c
}

// Len returns the number of registered cells
func (g *Gauges[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cells)
}

// appendPairs adds "name=value" for every cell under prefix, prefix trimmed
// format reports false to leave a cell out
func (g *Gauges[T]) appendPairs(dst []string, prefix string, format func(*T) (string, bool)) []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	for name, c := range g.cells {
		short, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		if v, ok := format(c); ok {
			dst = append(dst, short+"="+v)
		}
	}
	return dst
}
