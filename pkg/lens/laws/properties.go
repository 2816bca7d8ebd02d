package laws

import (
	"github.com/ib-77/lens3/pkg/lens"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// DefaultParameters are gopter defaults with 100 successful runs required.
func DefaultParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return parameters
}

// Properties registers GetSet, SetGet and SetSet for l over generated wholes
// and parts. A nil parameters means DefaultParameters.
func Properties[W, P comparable](name string, l lens.Lens[W, P], wholes, parts gopter.Gen,
	parameters *gopter.TestParameters) *gopter.Properties {

	if parameters == nil {
		parameters = DefaultParameters()
	}
	properties := gopter.NewProperties(parameters)

	properties.Property(name+" "+LawGetSet.String(), prop.ForAll(
		func(w W) bool {
			return GetSet(l, w)
		},
		wholes,
	))

	properties.Property(name+" "+LawSetGet.String(), prop.ForAll(
		func(w W, p P) bool {
			return SetGet(l, w, p)
		},
		wholes, parts,
	))

	properties.Property(name+" "+LawSetSet.String(), prop.ForAll(
		func(w W, p1, p2 P) bool {
			return SetSet(l, w, p1, p2)
		},
		wholes, parts, parts,
	))

	return properties
}

// CompositionProperties registers the single lens laws for Compose(lhs, rhs)
// together with ComposeConsistent.
func CompositionProperties[A, B, C comparable](name string, lhs lens.Lens[A, B], rhs lens.Lens[B, C],
	wholes, parts gopter.Gen, parameters *gopter.TestParameters) *gopter.Properties {

	properties := Properties(name, lens.Compose(lhs, rhs), wholes, parts, parameters)

	properties.Property(name+" matches manual composition", prop.ForAll(
		func(a A, c C) bool {
			return ComposeConsistent(lhs, rhs, a, c)
		},
		wholes, parts,
	))

	return properties
}
