package filter

import (
	"fmt"

	"surface-metrics/surface"
)

// Chain applies a sequence of filters in order, feeding each filter's
// output to the next. A leveling workflow is typically a median pass
// followed by a gaussian decomposition stage.
type Chain struct {
	filters []Filter
}

func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Len reports the number of filters in the chain.
func (c *Chain) Len() int { return len(c.filters) }

// Apply runs every filter in sequence. The input surface is never
// modified; an empty chain returns a copy.
func (c *Chain) Apply(s *surface.Surface) (*surface.Surface, error) {
	current := s.Clone()
	for i, f := range c.filters {
		next, err := f.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("chain step %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}
