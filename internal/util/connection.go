package util

import (
	"cmp"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Connection is an undirected graph stored as adjacency sets.
type Connection[T cmp.Ordered] SetMap[T, T]

func NewConnection[T cmp.Ordered](elements ...T) Connection[T] {
	return Connection[T](NewSetMap[T, T](elements...))
}

func (c Connection[T]) Connect(u, v T) {
	SetMap[T, T](c).Add(u, v)
	SetMap[T, T](c).Add(v, u)
}

func (c Connection[T]) Connected(u, v T) bool {
	return SetMap[T, T](c).Has(u, v)
}

// GetConnection returns the elements reachable from elem in at most distance
// steps, elem included. A negative distance means no limit.
func (c Connection[T]) GetConnection(elem T, distance int) mapset.Set[T] {
	if distance < 0 {
		distance = len(c) * (len(c) - 1) / 2
	}
	visited := mapset.NewSet(elem)
	queue := mapset.NewSet[T]()
	if s, ok := c[elem]; ok {
		queue = s.Clone()
	}
	for i := 0; i < distance && !queue.IsEmpty(); i++ {
		visited = visited.Union(queue)
		nextQueue := mapset.NewSet[T]()
		for _, q := range queue.ToSlice() {
			nextQueue = nextQueue.Union(c[q])
		}
		queue = nextQueue.Difference(visited)
	}
	return visited
}

// GetClusters returns the connected components ordered by their smallest element.
func (c Connection[T]) GetClusters() []mapset.Set[T] {
	visited := mapset.NewSet[T]()
	clusters := make([]mapset.Set[T], 0)
	elems := make([]T, 0, len(c))
	for elem := range c {
		elems = append(elems, elem)
	}
	slices.Sort(elems)
	for _, elem := range elems {
		if !visited.Contains(elem) {
			cluster := c.GetConnection(elem, -1)
			clusters = append(clusters, cluster)
			visited = visited.Union(cluster)
		}
	}
	return clusters
}

// Edges returns every connected pair (u, v), u < v, in ascending order.
func (c Connection[T]) Edges() []Pair[T] {
	edges := make([]Pair[T], 0)
	for u, vs := range c {
		for _, v := range vs.ToSlice() {
			if u < v {
				edges = append(edges, Pair[T]{u, v})
			}
		}
	}
	slices.SortFunc(edges, func(a, b Pair[T]) int {
		return cmp.Or(cmp.Compare(a.L, b.L), cmp.Compare(a.R, b.R))
	})
	return edges
}
