package kitchen

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KostyaKondratenko/DesignPatterns/internal/logger"
)

// ErrSoldOut is returned when a burger asks for a meat the kitchen is out of
var ErrSoldOut = errors.New("sold out")

// DefaultSoldOut lists the meats the kitchen is out of unless told otherwise
var DefaultSoldOut = []Meat{MeatKitten}

// HamburgerBuilder assembles a hamburger one ingredient at a time.
// A new builder starts with a plain beef patty.
type HamburgerBuilder struct {
	meat     Meat
	sauces   Sauces
	toppings Toppings
	soldOut  []Meat
}

// NewHamburgerBuilder creates a builder that refuses the given meats.
// A nil list uses DefaultSoldOut.
func NewHamburgerBuilder(soldOut []Meat) *HamburgerBuilder {
	if soldOut == nil {
		soldOut = DefaultSoldOut
	}
	return &HamburgerBuilder{
		meat:    MeatBeef,
		soldOut: slices.Clone(soldOut),
	}
}

func (b *HamburgerBuilder) AddSauce(sauce Sauces) {
	b.sauces |= sauce
}

func (b *HamburgerBuilder) RemoveSauce(sauce Sauces) {
	b.sauces &^= sauce
}

func (b *HamburgerBuilder) AddTopping(topping Toppings) {
	b.toppings |= topping
}

func (b *HamburgerBuilder) RemoveTopping(topping Toppings) {
	b.toppings &^= topping
}

// SetMeat picks the patty. It fails with ErrSoldOut if the meat is sold
// out, leaving the current meat in place.
func (b *HamburgerBuilder) SetMeat(meat Meat) error {
	if slices.Contains(b.soldOut, meat) {
		logger.Warning("Meat sold out", "meat", meat)
		return fmt.Errorf("%s: %w", meat, ErrSoldOut)
	}
	b.meat = meat
	return nil
}

// Build returns the hamburger assembled so far
func (b *HamburgerBuilder) Build() Hamburger {
	return Hamburger{
		Meat:     b.meat,
		Sauces:   b.sauces,
		Toppings: b.toppings,
	}
}
