// Package pairs evaluates a predicate over every pair of a loaded sequence.
package pairs

import (
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/pairwise/compare"
	"github.com/haijima/pairwise/internal/util"
)

type Predicate interface {
	Eval(i int, a any, j int, b any) (bool, error)
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(i int, a any, j int, b any) (bool, error)

func (f PredicateFunc) Eval(i int, a any, j int, b any) (bool, error) {
	return f(i, a, j, b)
}

type Match struct {
	I, J   int
	A, B   any
	Result bool
}

type Option struct {
	All   bool // keep pairs the predicate rejects
	Limit int  // stop after this many results, 0 for no limit
}

// Find evaluates p on the pairs of seq in order and returns the ones it accepts.
func Find(seq []any, p Predicate, opt Option) ([]Match, error) {
	c := compare.New(seq)
	matches := make([]Match, 0)
	for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
		res, err := p.Eval(a.Index, a.Value, b.Index, b.Value)
		if err != nil {
			return nil, err
		}
		if !res && !opt.All {
			continue
		}
		matches = append(matches, Match{I: a.Index, J: b.Index, A: a.Value, B: b.Value, Result: res})
		if opt.Limit > 0 && len(matches) >= opt.Limit {
			slog.Debug("limit reached", "limit", opt.Limit, "unvisited", c.Remaining())
			break
		}
	}
	return matches, nil
}

type Node struct {
	Index     int
	Value     any
	Neighbors []int
}

func (n *Node) Degree() int {
	return len(n.Neighbors)
}

// Graph links every pair of elements accepted by p. Each node's neighbour
// list is kept sorted.
func Graph(seq []any, p Predicate) ([]Node, error) {
	nodes := make([]Node, len(seq))
	for k, v := range seq {
		nodes[k] = Node{Index: k, Value: v}
	}

	c := compare.NewMut(nodes)
	for a, b, ok := c.Next(); ok; a, b, ok = c.Next() {
		linked, err := p.Eval(a.Index, a.Value, b.Index, b.Value)
		if err != nil {
			return nil, err
		}
		if linked {
			a.Neighbors = insertSorted(a.Neighbors, b.Index)
			b.Neighbors = insertSorted(b.Neighbors, a.Index)
		}
	}
	return nodes, nil
}

// Triangles returns, for each node, how many pairs of its neighbours are
// neighbours of each other. nodes[k].Index must be k, as Graph returns them.
func Triangles(nodes []Node) []int {
	conn := util.NewConnection[int]()
	for _, n := range nodes {
		for _, m := range n.Neighbors {
			conn.Connect(n.Index, m)
		}
	}

	// Every node adjacent to both ends of an edge closes one triangle, and
	// each triangle is seen once from each of its three edges.
	counts := make([]int, len(nodes))
	common := util.NewSetMap[util.Pair[int], int]()
	for _, e := range conn.Edges() {
		common.Intersect(e, conn[e.L])
		common.Intersect(e, conn[e.R])
		for _, w := range common[e].ToSlice() {
			counts[w]++
		}
	}
	return counts
}

type Cluster struct {
	Members []int
	// Missing lists the member pairs that are only connected through other members.
	Missing []util.Pair[int]
}

// Clusters groups the elements of seq into connected components of the graph
// whose edges are the pairs accepted by p.
func Clusters(seq []any, p Predicate) ([]Cluster, error) {
	indices := make([]int, len(seq))
	for k := range indices {
		indices[k] = k
	}
	conn := util.NewConnection(indices...)

	c := compare.New(seq)
	for a, b, ok := c.NextIndexed(); ok; a, b, ok = c.NextIndexed() {
		linked, err := p.Eval(a.Index, a.Value, b.Index, b.Value)
		if err != nil {
			return nil, err
		}
		if linked {
			conn.Connect(a.Index, b.Index)
		}
	}

	clusters := make([]Cluster, 0)
	for _, s := range conn.GetClusters() {
		members := mapset.Sorted(s)
		missing := make([]util.Pair[int], 0)
		util.PairCombinateFunc(members, func(u, v int) {
			if !conn.Connected(u, v) {
				missing = append(missing, util.Pair[int]{L: u, R: v})
			}
		})
		clusters = append(clusters, Cluster{Members: members, Missing: missing})
	}
	slog.Debug("clustered", "elements", len(seq), "clusters", len(clusters))
	return clusters, nil
}

func insertSorted(s []int, v int) []int {
	i, found := slices.BinarySearch(s, v)
	if found {
		return s
	}
	return slices.Insert(s, i, v)
}
