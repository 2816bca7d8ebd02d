package lens_test

import (
	"testing"

	"github.com/ib-77/lens3/pkg/lens"
	"github.com/ib-77/lens3/pkg/lens/sample"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y, Z int
	Label   string
}

var (
	pointX     = lens.New(func(p point) int { return p.X }, func(x int, p point) point { p.X = x; return p })
	pointY     = lens.New(func(p point) int { return p.Y }, func(y int, p point) point { p.Y = y; return p })
	pointZ     = lens.New(func(p point) int { return p.Z }, func(z int, p point) point { p.Z = z; return p })
	pointLabel = lens.New(func(p point) string { return p.Label }, func(l string, p point) point { p.Label = l; return p })
)

func TestZip_Get(t *testing.T) {
	t.Parallel()
	one := sample.One()

	got := lens.Zip(sample.AddressCity, sample.AddressStreet).Get(one)

	assert.Equal(t, lo.T2("NY", "Street 01"), got)
}

func TestZip_Set(t *testing.T) {
	t.Parallel()
	one := sample.UserBuilding.Set(mo.Some(sample.Building{ID: 9}), sample.Me()).Address

	updated := lens.Zip(sample.AddressCity, sample.AddressStreet).Set(lo.T2("C", "S"), one)

	assert.Equal(t, sample.Address{Street: "S", City: "C", Building: mo.Some(sample.Building{ID: 9})}, updated)
	assert.Equal(t, "Street 01", one.Street)
}

func TestZip_ConcreteScenario(t *testing.T) {
	t.Parallel()

	updated := lens.Zip(sample.AddressCity, sample.AddressStreet).Set(lo.T2("C", "S"), sample.One())

	assert.Equal(t, "S", updated.Street)
	assert.Equal(t, "C", updated.City)
	assert.Equal(t, sample.One().Building, updated.Building)
}

func TestZip_OverlappingFociRhsWins(t *testing.T) {
	t.Parallel()

	updated := lens.Zip(sample.AddressCity, sample.AddressCity).Set(lo.T2("first", "second"), sample.One())

	assert.Equal(t, "second", updated.City)
}

func TestZip2(t *testing.T) {
	t.Parallel()
	p := point{X: 1, Y: 2, Z: 3, Label: "p"}
	zipped := lens.Zip2(pointX, pointY, pointZ)

	assert.Equal(t, lo.T2(1, lo.T2(2, 3)), zipped.Get(p))

	updated := zipped.Set(lo.T2(10, lo.T2(20, 30)), p)
	assert.Equal(t, point{X: 10, Y: 20, Z: 30, Label: "p"}, updated)
}

func TestZip3(t *testing.T) {
	t.Parallel()
	p := point{X: 1, Y: 2, Z: 3, Label: "p"}
	zipped := lens.Zip3(pointLabel, pointX, pointY, pointZ)

	assert.Equal(t, lo.T2("p", lo.T2(1, lo.T2(2, 3))), zipped.Get(p))

	updated := zipped.Set(lo.T2("q", lo.T2(4, lo.T2(5, 6))), p)
	assert.Equal(t, point{X: 4, Y: 5, Z: 6, Label: "q"}, updated)
}

func TestZipFlat_MatchesNested(t *testing.T) {
	t.Parallel()
	p := point{X: 1, Y: 2, Z: 3, Label: "p"}

	flat3 := lens.ZipFlat3(pointX, pointY, pointZ)
	assert.Equal(t, lo.T3(1, 2, 3), flat3.Get(p))
	assert.Equal(t,
		lens.Zip2(pointX, pointY, pointZ).Set(lo.T2(7, lo.T2(8, 9)), p),
		flat3.Set(lo.T3(7, 8, 9), p))

	flat4 := lens.ZipFlat4(pointLabel, pointX, pointY, pointZ)
	assert.Equal(t, lo.T4("p", 1, 2, 3), flat4.Get(p))
	assert.Equal(t,
		lens.Zip3(pointLabel, pointX, pointY, pointZ).Set(lo.T2("q", lo.T2(7, lo.T2(8, 9))), p),
		flat4.Set(lo.T4("q", 7, 8, 9), p))
}

func TestZip_ComposesWithCompose(t *testing.T) {
	t.Parallel()

	userPlace := lens.Compose(sample.UserAddress, lens.Zip(sample.AddressCity, sample.AddressStreet))
	updated := userPlace.Set(lo.T2("Turin", "Via Roma"), sample.Me())

	assert.Equal(t, "Turin", updated.Address.City)
	assert.Equal(t, "Via Roma", updated.Address.Street)
	assert.Equal(t, "Me", updated.Name)
}
