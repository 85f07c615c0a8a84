package stats

import "slices"

// counter keeps names in the order of their first occurrence.
type counter struct {
	idx   map[string]int
	items []Frequency
}

func newCounter() *counter {
	return &counter{idx: make(map[string]int)}
}

func (c *counter) add(name string) {
	if i, ok := c.idx[name]; ok {
		c.items[i].Count++
		return
	}
	c.idx[name] = len(c.items)
	c.items = append(c.items, Frequency{Name: name, Count: 1})
}

// list sorts by count with a stable sort, so ties keep insertion order.
func (c *counter) list() []Frequency {
	res := slices.Clone(c.items)
	slices.SortStableFunc(res, func(a, b Frequency) int {
		return b.Count - a.Count
	})
	return res
}
