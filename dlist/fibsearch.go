package dlist

// FibSearch looks up a record whose page count equals target using
// Fibonacci search.
//
// Precondition: the list is sorted ascending by page count. This is checked
// by gnome-sorting a copy and comparing it with the list; a mismatch returns
// ErrNotSorted. An absent key is not an error: the result has Found=false.
//
// Algorithm (positions are 1-based, position i holds element i-1):
//  1. Pick the smallest k with F(k+1) ≥ n+1 and m = F(k+1) − (n+1).
//     Start at i = F(k) − m with step pair p = F(k−1), q = F(k−2).
//  2. i < 1        → step up (positions before the head act as −∞).
//     i > n        → step down.
//     key == target → found.
//     target < key → step down; target > key → step up.
//  3. Step up:   stop if p == 1, else i += q, p −= q, q −= p.
//     Step down: stop if q == 0, else i −= q, (p, q) = (q, p − q).
//
// The probe state lives in a per-call fibProbe, so concurrent searches on
// one list do not interfere.
//
// Complexity: O(n) for the sortedness check (O(n²) if unsorted), then
// O(log n) probes.
func (l *List[T]) FibSearch(target int) (SearchResult[T], error) {
	l.mu.RLock()
	values := l.items()
	l.mu.RUnlock()

	sorted := make([]T, len(values))
	copy(sorted, values)
	gnomeSort(sorted)
	if !equalValues(values, sorted) {
		return notFound[T](), ErrNotSorted
	}

	if idx := fibIndex(values, target); idx >= 0 {
		return SearchResult[T]{Value: values[idx], Index: idx, Found: true}, nil
	}

	return notFound[T](), nil
}

func notFound[T any]() SearchResult[T] {
	return SearchResult[T]{Index: -1}
}

// fibIndex returns the 0-based index of a record keyed target in the
// sorted slice a, or -1.
func fibIndex[T Record[T]](a []T, target int) int {
	n := len(a)
	if n == 0 {
		return -1
	}
	s := newFibProbe(n)
	for !s.stop {
		switch {
		case s.i < 1:
			s.up()
		case s.i > n:
			s.down()
		default:
			key := a[s.i-1].PageCount()
			switch {
			case target == key:
				return s.i - 1
			case target < key:
				s.down()
			default:
				s.up()
			}
		}
	}

	return -1
}

// fibProbe is the state of one Fibonacci search.
// p and q are always consecutive Fibonacci numbers, p ≥ q.
type fibProbe struct {
	i, p, q int
	stop    bool
}

func newFibProbe(n int) *fibProbe {
	k := 0
	for fibonacci(k+1) < n+1 {
		k++
	}
	m := fibonacci(k+1) - (n + 1)

	return &fibProbe{
		i: fibonacci(k) - m,
		p: fibonacci(k - 1),
		q: fibonacci(k - 2),
	}
}

func (s *fibProbe) up() {
	if s.p == 1 {
		s.stop = true
		return
	}
	s.i += s.q
	s.p -= s.q
	s.q -= s.p
}

func (s *fibProbe) down() {
	if s.q == 0 {
		s.stop = true
		return
	}
	s.i -= s.q
	s.p, s.q = s.q, s.p-s.q
}

// fibonacci returns F(k) with F(0)=0, F(1)=1; F(k)=0 for k < 0.
func fibonacci(k int) int {
	a, b := 0, 1
	for ; k > 0; k-- {
		a, b = b, a+b
	}

	return a
}
