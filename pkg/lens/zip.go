package lens

import "github.com/samber/lo"

// Zip focuses on two parts of the same whole as a pair.
//
// lhs and rhs must focus on disjoint parts of A. Set applies lhs first and
// rhs to the already updated whole, so with overlapping foci rhs wins.
func Zip[A, B, C any](lhs Lens[A, B], rhs Lens[A, C]) Lens[A, lo.Tuple2[B, C]] {
	return Lens[A, lo.Tuple2[B, C]]{
		get: func(a A) lo.Tuple2[B, C] {
			return lo.T2(lhs.get(a), rhs.get(a))
		},
		set: func(bc lo.Tuple2[B, C], a A) A {
			b, c := bc.Unpack()
			return rhs.set(c, lhs.set(b, a))
		},
	}
}

// Zip2 is Zip(first, Zip(second, third)).
func Zip2[A, B, C, D any](first Lens[A, B], second Lens[A, C],
	third Lens[A, D]) Lens[A, lo.Tuple2[B, lo.Tuple2[C, D]]] {
	return Zip(first, Zip(second, third))
}

// Zip3 is Zip(first, Zip2(second, third, fourth)).
func Zip3[A, B, C, D, E any](first Lens[A, B], second Lens[A, C], third Lens[A, D],
	fourth Lens[A, E]) Lens[A, lo.Tuple2[B, lo.Tuple2[C, lo.Tuple2[D, E]]]] {
	return Zip(first, Zip2(second, third, fourth))
}

// ZipFlat3 behaves like Zip2 but exposes a flat triple.
func ZipFlat3[A, B, C, D any](first Lens[A, B], second Lens[A, C],
	third Lens[A, D]) Lens[A, lo.Tuple3[B, C, D]] {
	return Lens[A, lo.Tuple3[B, C, D]]{
		get: func(a A) lo.Tuple3[B, C, D] {
			return lo.T3(first.get(a), second.get(a), third.get(a))
		},
		set: func(t lo.Tuple3[B, C, D], a A) A {
			return third.set(t.C, second.set(t.B, first.set(t.A, a)))
		},
	}
}

// ZipFlat4 behaves like Zip3 but exposes a flat quadruple.
func ZipFlat4[A, B, C, D, E any](first Lens[A, B], second Lens[A, C], third Lens[A, D],
	fourth Lens[A, E]) Lens[A, lo.Tuple4[B, C, D, E]] {
	return Lens[A, lo.Tuple4[B, C, D, E]]{
		get: func(a A) lo.Tuple4[B, C, D, E] {
			return lo.T4(first.get(a), second.get(a), third.get(a), fourth.get(a))
		},
		set: func(t lo.Tuple4[B, C, D, E], a A) A {
			return fourth.set(t.D, third.set(t.C, second.set(t.B, first.set(t.A, a))))
		},
	}
}
