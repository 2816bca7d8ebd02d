package lens

// Compose focuses through lhs and then rhs.
//
// Setting reads the intermediate B from a, updates it with rhs and writes the
// updated B back with lhs. Both inputs stay usable on their own.
func Compose[A, B, C any](lhs Lens[A, B], rhs Lens[B, C]) Lens[A, C] {
	return Lens[A, C]{
		get: func(a A) C {
			return rhs.get(lhs.get(a))
		},
		set: func(c C, a A) A {
			return lhs.set(rhs.set(c, lhs.get(a)), a)
		},
	}
}

// Compose3 is Compose(Compose(ab, bc), cd).
func Compose3[A, B, C, D any](ab Lens[A, B], bc Lens[B, C], cd Lens[C, D]) Lens[A, D] {
	return Compose(Compose(ab, bc), cd)
}
