package carousel

import "sort"

// RenderOrder returns card indices in the order they should be drawn: back to
// front by z-index, ties broken by index.
func (e *Engine) RenderOrder() []int {
	order := make([]int, len(e.cards))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.cards[order[a]].Z < e.cards[order[b]].Z
	})
	return order
}

// Front returns the index of the front-most card, or -1 when there are none.
func (e *Engine) Front() int {
	front := -1
	for i, c := range e.cards {
		if front < 0 || c.Z > e.cards[front].Z {
			front = i
		}
	}
	return front
}
