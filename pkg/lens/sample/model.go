package sample

import "github.com/samber/mo"

type Building struct {
	ID int
}

type Address struct {
	Street   string
	City     string
	Building mo.Option[Building]
}

type User struct {
	Name    string
	Address Address
}

// One is the address every fixture starts from.
func One() Address {
	return Address{Street: "Street 01", City: "NY", Building: mo.None[Building]()}
}

func Me() User {
	return User{Name: "Me", Address: One()}
}
