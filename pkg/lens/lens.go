package lens

// Lens gives read and copy-on-write access to a part P of a whole W.
type Lens[W, P any] struct {
	get func(W) P
	set func(P, W) W
}

// New creates a lens from a getter and a setter. The setter must return a new
// whole and leave its input untouched.
func New[W, P any](get func(W) P, set func(P, W) W) Lens[W, P] {
	return Lens[W, P]{get: get, set: set}
}

// Get returns the focused part of w.
func (l Lens[W, P]) Get(w W) P {
	return l.get(w)
}

// Set returns a copy of w with the focused part replaced by p.
func (l Lens[W, P]) Set(p P, w W) W {
	return l.set(p, w)
}

// Over lifts f into a function on the whole: the focused part is read once,
// passed to f once and written back once.
func (l Lens[W, P]) Over(f func(P) P) func(W) W {
	return func(w W) W {
		return l.set(f(l.get(w)), w)
	}
}

// Modify applies f to the focused part of w.
func (l Lens[W, P]) Modify(w W, f func(P) P) W {
	return l.Over(f)(w)
}

// Identity focuses on the whole value.
func Identity[W any]() Lens[W, W] {
	return Lens[W, W]{
		get: func(w W) W { return w },
		set: func(p W, _ W) W { return p },
	}
}
