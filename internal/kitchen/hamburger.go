// Package kitchen builds hamburgers step by step and serves house combos.
package kitchen

import "strings"

// Meat is the patty of a hamburger
type Meat string

const (
	MeatBeef    Meat = "beef"
	MeatChicken Meat = "chicken"
	MeatKitten  Meat = "kitten"
	MeatTofu    Meat = "tofu"
)

// ParseMeat converts a string to a Meat
func ParseMeat(s string) (Meat, bool) {
	switch m := Meat(strings.ToLower(strings.TrimSpace(s))); m {
	case MeatBeef, MeatChicken, MeatKitten, MeatTofu:
		return m, true
	default:
		return MeatBeef, false
	}
}

// Sauces is a set of sauces
type Sauces uint8

const (
	SauceMayonnaise Sauces = 1 << iota
	SauceMustard
	SauceKetchup
	SauceSecret
)

// Has reports whether every sauce in other is in s
func (s Sauces) Has(other Sauces) bool {
	return s&other == other
}

// Toppings is a set of toppings
type Toppings uint8

const (
	ToppingCheese Toppings = 1 << iota
	ToppingLettuce
	ToppingPickles
	ToppingTomatoes
)

// Has reports whether every topping in other is in t
func (t Toppings) Has(other Toppings) bool {
	return t&other == other
}

// Hamburger is an assembled burger
type Hamburger struct {
	Meat     Meat
	Sauces   Sauces
	Toppings Toppings
}

func (h Hamburger) String() string {
	return string(h.Meat) + " burger"
}
