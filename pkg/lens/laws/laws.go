package laws

import (
	"github.com/ib-77/lens3/pkg/lens"
	"github.com/samber/lo"
)

// GetSet reports whether writing back what was read leaves w unchanged.
func GetSet[W, P comparable](l lens.Lens[W, P], w W) bool {
	return l.Set(l.Get(w), w) == w
}

// SetGet reports whether p reads back after being set.
func SetGet[W, P comparable](l lens.Lens[W, P], w W, p P) bool {
	return l.Get(l.Set(p, w)) == p
}

// SetSet reports whether only the last of two sets is observable.
func SetSet[W, P comparable](l lens.Lens[W, P], w W, p1, p2 P) bool {
	return l.Set(p2, l.Set(p1, w)) == l.Set(p2, w)
}

// SetTwice reports whether p reads back after being set twice in a row.
func SetTwice[W, P comparable](l lens.Lens[W, P], w W, p P) bool {
	return l.Get(l.Set(p, l.Set(p, w))) == p
}

// ComposeConsistent reports whether lens.Compose(lhs, rhs) behaves exactly
// like applying lhs and rhs by hand, for both get and set.
func ComposeConsistent[A, B, C comparable](lhs lens.Lens[A, B], rhs lens.Lens[B, C], a A, c C) bool {
	composed := lens.Compose(lhs, rhs)

	if composed.Get(a) != rhs.Get(lhs.Get(a)) {
		return false
	}
	return composed.Set(c, a) == lhs.Set(rhs.Set(c, lhs.Get(a)), a)
}

// ZipConsistent reports whether lens.Zip(lhs, rhs) reads the pair of both
// parts and whether both b and c read back after a zipped set.
func ZipConsistent[A, B, C comparable](lhs lens.Lens[A, B], rhs lens.Lens[A, C], a A, b B, c C) bool {
	zipped := lens.Zip(lhs, rhs)

	if zipped.Get(a) != lo.T2(lhs.Get(a), rhs.Get(a)) {
		return false
	}

	updated := zipped.Set(lo.T2(b, c), a)
	return lhs.Get(updated) == b && rhs.Get(updated) == c
}

// OverConsistent reports whether l.Over(f) matches set-after-get.
func OverConsistent[W, P comparable](l lens.Lens[W, P], w W, f func(P) P) bool {
	return l.Over(f)(w) == l.Set(f(l.Get(w)), w)
}
