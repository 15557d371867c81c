// Package union tracks merged piece groups as a disjoint-set forest over
// piece IDs.
package union

import "fmt"

type Forest struct {
	parent []int
}

// NewForest starts with every element as its own root.
func NewForest(n int) *Forest {
	f := &Forest{parent: make([]int, n)}
	for i := range f.parent {
		f.parent[i] = i
	}
	return f
}

func (f *Forest) Len() int { return len(f.parent) }

// Find returns the root of x and points every element on the path directly
// at it. A chain longer than the forest means the parent links form a cycle,
// which Union never produces; Find panics in that case.
func (f *Forest) Find(x int) int {
	root := x
	for steps := 0; f.parent[root] != root; steps++ {
		if steps > len(f.parent) {
			panic(fmt.Sprintf("union: cyclic parent chain from %d", x))
		}
		root = f.parent[root]
	}
	for x != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}
	return root
}

// Union attaches a's root under b's root.
func (f *Forest) Union(a, b int) {
	ra, rb := f.Find(a), f.Find(b)
	if ra != rb {
		f.parent[ra] = rb
	}
}

func (f *Forest) Same(a, b int) bool {
	return f.Find(a) == f.Find(b)
}

// Members lists every element sharing x's root, in ascending order.
func (f *Forest) Members(x int) []int {
	root := f.Find(x)
	var out []int
	for i := range f.parent {
		if f.Find(i) == root {
			out = append(out, i)
		}
	}
	return out
}

// Connected reports whether all elements share one root.
func (f *Forest) Connected() bool {
	if len(f.parent) == 0 {
		return true
	}
	ref := f.Find(0)
	for i := range f.parent {
		if f.Find(i) != ref {
			return false
		}
	}
	return true
}

// Groups returns the number of distinct roots.
func (f *Forest) Groups() int {
	n := 0
	for i := range f.parent {
		if f.Find(i) == i {
			n++
		}
	}
	return n
}
