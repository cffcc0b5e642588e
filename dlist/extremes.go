package dlist

import "cmp"

// Min returns the smallest payload by T.Compare, or false on an empty list.
// The first of several equal minima wins.
// Complexity: O(n).
func (l *List[T]) Min() (T, bool) {
	return l.scan(func(cand, best T) bool { return cand.Compare(best) < 0 })
}

// Max returns the largest payload by T.Compare, or false on an empty list.
// Complexity: O(n).
func (l *List[T]) Max() (T, bool) {
	return l.scan(func(cand, best T) bool { return cand.Compare(best) > 0 })
}

// MinBy returns the payload with the smallest key(v), or false on an empty list.
// Complexity: O(n).
func MinBy[T Record[T], K cmp.Ordered](l *List[T], key func(T) K) (T, bool) {
	return l.scan(func(cand, best T) bool { return key(cand) < key(best) })
}

// MaxBy returns the payload with the largest key(v), or false on an empty list.
// Complexity: O(n).
func MaxBy[T Record[T], K cmp.Ordered](l *List[T], key func(T) K) (T, bool) {
	return l.scan(func(cand, best T) bool { return key(cand) > key(best) })
}

// MinByCompat is MinBy with the legacy rule for zero keys: a candidate whose
// key is the zero K is compared to the running minimum by T.Compare
// instead of by key. Use MinBy unless results must match that legacy rule.
func MinByCompat[T Record[T], K cmp.Ordered](l *List[T], key func(T) K) (T, bool) {
	var zero K
	return l.scan(func(cand, best T) bool {
		if k := key(cand); k != zero {
			return k < key(best)
		}
		return cand.Compare(best) < 0
	})
}

// MaxByCompat is the MaxBy counterpart of MinByCompat.
func MaxByCompat[T Record[T], K cmp.Ordered](l *List[T], key func(T) K) (T, bool) {
	var zero K
	return l.scan(func(cand, best T) bool {
		if k := key(cand); k != zero {
			return k > key(best)
		}
		return cand.Compare(best) > 0
	})
}

// scan walks head to tail keeping the running best; better(cand, best)
// decides replacement.
func (l *List[T]) scan(better func(cand, best T) bool) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.head == nil {
		var zero T
		return zero, false
	}
	best := l.head.value
	for n := l.head.next; n != nil; n = n.next {
		if better(n.value, best) {
			best = n.value
		}
	}

	return best, true
}
