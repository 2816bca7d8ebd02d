// Package laws checks that lenses are well behaved.
//
// The lens laws, for a lens l, a whole w and parts p, p1, p2:
// - GetSet: l.Set(l.Get(w), w) == w
// - SetGet: l.Get(l.Set(p, w)) == p
// - SetSet: l.Set(p2, l.Set(p1, w)) == l.Set(p2, w)
//
// Every check is a pure predicate over comparable types and returns false on
// a violation; nothing panics on a bad lens. Three forms are offered:
// - predicates (GetSet, SetGet, SetSet, SetTwice, ComposeConsistent,
//   ZipConsistent, OverConsistent) for direct use in tests
// - Verify, which runs the single lens laws over samples and returns a Report
// - Properties and CompositionProperties, which register the laws as gopter
//   properties over generated inputs
package laws
