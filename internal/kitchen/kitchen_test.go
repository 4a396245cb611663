package kitchen

import (
	"errors"
	"strings"
	"testing"
)

func TestHamburgerBuilderDefaults(t *testing.T) {
	burger := NewHamburgerBuilder(nil).Build()

	if burger.Meat != MeatBeef {
		t.Errorf("default meat = %q, want %q", burger.Meat, MeatBeef)
	}
	if burger.Sauces != 0 || burger.Toppings != 0 {
		t.Errorf("default burger should be plain, got sauces=%b toppings=%b", burger.Sauces, burger.Toppings)
	}
	if burger.String() != "beef burger" {
		t.Errorf("String() = %q, want %q", burger.String(), "beef burger")
	}
}

func TestHamburgerBuilderSaucesAndToppings(t *testing.T) {
	b := NewHamburgerBuilder(nil)
	b.AddSauce(SauceKetchup | SauceMustard)
	b.RemoveSauce(SauceMustard)
	b.AddTopping(ToppingCheese)
	b.AddTopping(ToppingPickles)
	b.RemoveTopping(ToppingCheese)

	burger := b.Build()
	if !burger.Sauces.Has(SauceKetchup) || burger.Sauces.Has(SauceMustard) {
		t.Errorf("unexpected sauces %b", burger.Sauces)
	}
	if !burger.Toppings.Has(ToppingPickles) || burger.Toppings.Has(ToppingCheese) {
		t.Errorf("unexpected toppings %b", burger.Toppings)
	}
}

func TestSetMeat(t *testing.T) {
	tests := []struct {
		name     string
		soldOut  []Meat
		meat     Meat
		wantErr  bool
		wantMeat Meat
	}{
		{"default kitchen serves chicken", nil, MeatChicken, false, MeatChicken},
		{"default kitchen is out of kitten", nil, MeatKitten, true, MeatBeef},
		{"nothing sold out", []Meat{}, MeatKitten, false, MeatKitten},
		{"tofu sold out", []Meat{MeatTofu}, MeatTofu, true, MeatBeef},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewHamburgerBuilder(tt.soldOut)
			err := b.SetMeat(tt.meat)

			if tt.wantErr {
				if !errors.Is(err, ErrSoldOut) {
					t.Errorf("SetMeat(%q) error = %v, want ErrSoldOut", tt.meat, err)
				}
			} else if err != nil {
				t.Errorf("SetMeat(%q) unexpected error: %v", tt.meat, err)
			}

			if got := b.Build().Meat; got != tt.wantMeat {
				t.Errorf("meat after SetMeat = %q, want %q", got, tt.wantMeat)
			}
		})
	}
}

func TestEmployeeCombos(t *testing.T) {
	chef := NewEmployee(nil)

	combo, err := chef.CreateCombo1()
	if err != nil {
		t.Fatalf("CreateCombo1 failed: %v", err)
	}
	if !combo.Sauces.Has(SauceSecret) {
		t.Error("combo 1 missing secret sauce")
	}
	if !combo.Toppings.Has(ToppingLettuce | ToppingTomatoes | ToppingPickles) {
		t.Errorf("combo 1 toppings = %b", combo.Toppings)
	}

	if _, err := chef.CreateKittenSpecial(); !errors.Is(err, ErrSoldOut) {
		t.Errorf("CreateKittenSpecial error = %v, want ErrSoldOut", err)
	}

	special, err := NewEmployee([]Meat{}).CreateKittenSpecial()
	if err != nil {
		t.Fatalf("kitten special with full stock failed: %v", err)
	}
	if special.Meat != MeatKitten {
		t.Errorf("kitten special meat = %q", special.Meat)
	}
}

func TestConsume(t *testing.T) {
	chef := NewEmployee(nil)

	if got := Consume(chef.CreateCombo1); got != "Om nom nom! Great beef burger." {
		t.Errorf("Consume(combo 1) = %q", got)
	}

	got := Consume(chef.CreateKittenSpecial)
	if !strings.HasPrefix(got, "Oops, there is nothing here because") || !strings.Contains(got, "sold out") {
		t.Errorf("Consume(kitten special) = %q", got)
	}
}

func TestParseMeat(t *testing.T) {
	if m, ok := ParseMeat(" Tofu "); !ok || m != MeatTofu {
		t.Errorf("ParseMeat(\" Tofu \") = %q, %v", m, ok)
	}
	if _, ok := ParseMeat("unicorn"); ok {
		t.Error("ParseMeat accepted an unknown meat")
	}
}
