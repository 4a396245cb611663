package kitchen

import "fmt"

// Employee knows the house combos and builds them to order
type Employee struct {
	soldOut []Meat
}

// NewEmployee creates an employee working a kitchen out of the given meats
func NewEmployee(soldOut []Meat) *Employee {
	return &Employee{soldOut: soldOut}
}

// CreateCombo1 is a beef burger with secret sauce, lettuce, tomatoes and pickles
func (e *Employee) CreateCombo1() (Hamburger, error) {
	builder := NewHamburgerBuilder(e.soldOut)
	if err := builder.SetMeat(MeatBeef); err != nil {
		return Hamburger{}, fmt.Errorf("combo 1: %w", err)
	}
	builder.AddSauce(SauceSecret)
	builder.AddTopping(ToppingLettuce | ToppingTomatoes | ToppingPickles)
	return builder.Build(), nil
}

// CreateKittenSpecial is a kitten burger with mustard, lettuce and tomatoes
func (e *Employee) CreateKittenSpecial() (Hamburger, error) {
	builder := NewHamburgerBuilder(e.soldOut)
	if err := builder.SetMeat(MeatKitten); err != nil {
		return Hamburger{}, fmt.Errorf("kitten special: %w", err)
	}
	builder.AddSauce(SauceMustard)
	builder.AddTopping(ToppingLettuce | ToppingTomatoes)
	return builder.Build(), nil
}

// Consume orders a burger and describes how it went
func Consume(order func() (Hamburger, error)) string {
	burger, err := order()
	if err != nil {
		return fmt.Sprintf("Oops, there is nothing here because %v.", err)
	}
	return fmt.Sprintf("Om nom nom! Great %s.", burger)
}
