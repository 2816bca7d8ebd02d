package sample

import (
	"github.com/ib-77/lens3/pkg/lens"
	"github.com/samber/mo"
)

// Leaf lenses rebuild the whole explicitly so every untouched field is copied
// through.
var (
	UserName = lens.New(
		func(u User) string { return u.Name },
		func(name string, u User) User { return User{Name: name, Address: u.Address} },
	)

	UserAddress = lens.New(
		func(u User) Address { return u.Address },
		func(a Address, u User) User { return User{Name: u.Name, Address: a} },
	)

	AddressStreet = lens.New(
		func(a Address) string { return a.Street },
		func(street string, a Address) Address {
			return Address{Street: street, City: a.City, Building: a.Building}
		},
	)

	AddressCity = lens.New(
		func(a Address) string { return a.City },
		func(city string, a Address) Address {
			return Address{Street: a.Street, City: city, Building: a.Building}
		},
	)

	AddressBuilding = lens.New(
		func(a Address) mo.Option[Building] { return a.Building },
		func(b mo.Option[Building], a Address) Address {
			return Address{Street: a.Street, City: a.City, Building: b}
		},
	)

	BuildingID = lens.New(
		func(b Building) int { return b.ID },
		func(id int, _ Building) Building { return Building{ID: id} },
	)
)

// Composed lenses.
var (
	UserCity     = lens.Compose(UserAddress, AddressCity)
	UserStreet   = lens.Compose(UserAddress, AddressStreet)
	UserBuilding = lens.Compose(UserAddress, AddressBuilding)
)
