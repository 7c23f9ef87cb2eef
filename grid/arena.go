package grid

// Arena owns every Node of one search run, addressed by the row-major index
// of the node's Position. Node identity per Position is unique within an
// Arena; relaxations mutate nodes in place.
type Arena struct {
	g     *Grid
	slots []*Node
	live  int
}

// NewArena returns an empty arena sized for g.
func NewArena(g *Grid) *Arena {
	return &Arena{g: g, slots: make([]*Node, g.Width*g.Height)}
}

// Node returns the canonical node for p, creating it with no parent, no
// action and cost 0 on first use.
func (a *Arena) Node(p Position) (*Node, error) {
	if err := a.g.check("Node", p); err != nil {
		return nil, err
	}
	i := a.g.index(p)
	if n := a.slots[i]; n != nil {
		return n, nil
	}
	n := &Node{State: p}
	a.slots[i] = n
	a.live++
	return n, nil
}

// Len reports how many nodes have been created.
func (a *Arena) Len() int { return a.live }
