package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Dijkstra finds a minimum-cost path from g.Start to g.End.
//
// Returns *Solution when End is reachable and *NoSolution otherwise; an error
// only for a nil or invalid grid or when WithMaxExpansions is exceeded.
//
// Complexity:
//
//   - Time:  O(C log C) where C = W×H.
//   - Space: O(C).
func Dijkstra(g *grid.Grid, opts ...Option) (Result, error) {
	return run(DijkstrasSearch, g, opts)
}

// BellmanFordSearch is the second named variant. It runs the same
// uniform-cost engine as Dijkstra and has no negative-edge handling; grid
// costs are always positive.
func BellmanFordSearch(g *grid.Grid, opts ...Option) (Result, error) {
	return run(BellmanFord, g, opts)
}

// Run dispatches to the engine registered for alg.
func Run(alg Algorithm, g *grid.Grid, opts ...Option) (Result, error) {
	switch alg {
	case DijkstrasSearch:
		return Dijkstra(g, opts...)
	case BellmanFord:
		return BellmanFordSearch(g, opts...)
	default:
		return nil, fmt.Errorf("Run: %v: %w", alg, ErrUnknownAlgorithm)
	}
}

func run(alg Algorithm, g *grid.Grid, opts []Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}

	r := newRunner(g, cfg)
	res, err := r.solve()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", alg, err)
	}

	cfg.Logger.Debug("search finished",
		zap.String("algorithm", alg.Code()),
		zap.Bool("found", res.Found()),
		zap.Int("explored", len(res.Visited())),
		zap.Int("cost", res.Cost()),
		zap.Int("pushes", r.pushes),
	)
	return res, nil
}

// runner holds the per-invocation state of one search. Nothing in it
// survives the call.
type runner struct {
	g     *grid.Grid
	opts  Options
	nodes *grid.Arena
	pq    *frontier.Frontier[*grid.Node]

	dist     []int  // best known cost by row-major index
	known    []bool // dist[i] is meaningful
	done     []bool // cell already appended to explored
	explored []grid.Position
	pushes   int
}

func newRunner(g *grid.Grid, opts Options) *runner {
	n := g.Width * g.Height
	return &runner{
		g:     g,
		opts:  opts,
		nodes: grid.NewArena(g),
		pq:    frontier.New[*grid.Node](n),
		dist:  make([]int, n),
		known: make([]bool, n),
		done:  make([]bool, n),
	}
}

// solve runs the pop/explore/relax loop until End is popped or the
// frontier is empty.
func (r *runner) solve() (Result, error) {
	start, err := r.nodes.Node(r.g.Start)
	if err != nil {
		return nil, err
	}
	si := r.g.ID(r.g.Start)
	r.dist[si], r.known[si] = 0, true
	r.push(start, 0)

	for {
		cur, ok := r.pq.Pop()
		if !ok {
			return &NoSolution{Explored: r.explored}, nil
		}
		ci := r.g.ID(cur.State)
		// Stale entry: the cell was finalized by an earlier, cheaper pop.
		if r.done[ci] {
			continue
		}
		r.done[ci] = true
		r.explored = append(r.explored, cur.State)
		if r.opts.MaxExpansions > 0 && len(r.explored) > r.opts.MaxExpansions {
			return nil, fmt.Errorf("solve: %d cells: %w", r.opts.MaxExpansions, ErrExpansionLimit)
		}
		if r.opts.OnVisit != nil {
			r.opts.OnVisit(cur.State)
		}

		if cur.State == r.g.End {
			return r.solution(cur), nil
		}
		if err = r.relax(cur); err != nil {
			return nil, err
		}
	}
}

// relax offers every passable neighbour of cur a path through cur.
func (r *runner) relax(cur *grid.Node) error {
	nbs, err := r.g.GetNeighbours(cur.State)
	if err != nil {
		return err
	}
	base := r.dist[r.g.ID(cur.State)]
	for _, nb := range nbs {
		cost, err := r.g.GetCost(nb.Pos)
		if err != nil {
			return err
		}
		candidate := base + cost
		ni := r.g.ID(nb.Pos)
		if r.known[ni] && candidate >= r.dist[ni] {
			continue
		}
		r.dist[ni], r.known[ni] = candidate, true

		node, err := r.nodes.Node(nb.Pos)
		if err != nil {
			return err
		}
		node.Parent = cur
		node.SetAction(nb.Action)
		node.Cost = cost
		r.push(node, candidate)
	}
	return nil
}

func (r *runner) push(n *grid.Node, priority int) {
	r.pq.Add(n, priority)
	r.pushes++
}

// solution walks parent links from end back to the root and sums edge costs.
func (r *runner) solution(end *grid.Node) *Solution {
	var (
		rev  []grid.Position
		cost int
	)
	for n := end; n != nil; n = n.Parent {
		rev = append(rev, n.State)
		cost += n.Cost
	}
	cells := make([]grid.Position, 0, len(rev)+1)
	if rev[len(rev)-1] != r.g.Start {
		cells = append(cells, r.g.Start)
	}
	for i := len(rev) - 1; i >= 0; i-- {
		cells = append(cells, rev[i])
	}
	return &Solution{Cells: cells, Explored: r.explored, PathCost: cost}
}
