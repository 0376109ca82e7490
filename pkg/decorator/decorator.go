// Package decorator enhances the behaviour of a Pizza at runtime by wrapping it with toppings.
//
// A decorated pizza is a Pizza itself and holds the Pizza it wraps,
// so toppings can be stacked like the nodes of a linked list.
package decorator

import (
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrNilPizza errorkit.Error = "decorator: nil pizza"

type Pizza interface {
	Price() float64
	Text() string
}

type NormalCrust struct{}

func (NormalCrust) Price() float64 { return 3 }
func (NormalCrust) Text() string   { return "pizza" }

type ThinCrust struct{}

func (ThinCrust) Price() float64 { return 2 }
func (ThinCrust) Text() string   { return "thin crust pizza" }

// Topping is a Pizza decorator.
// It adds its own price and name to the decorated Pizza.
type Topping struct {
	Name  string
	Price float64
}

// Decorate wraps the pizza with the topping.
func (t Topping) Decorate(p Pizza) (Pizza, error) {
	if p == nil {
		return nil, ErrNilPizza
	}
	return toppedPizza{Pizza: p, Topping: t}, nil
}

// WithTopping is a shorthand for decorating a pizza with a single topping.
func WithTopping(p Pizza, name string, price float64) (Pizza, error) {
	return Topping{Name: name, Price: price}.Decorate(p)
}

// Chain decorates the pizza with every topping, in the given order.
// The last topping ends up as the outermost decorator.
func Chain(p Pizza, toppings ...Topping) (Pizza, error) {
	if p == nil {
		return nil, ErrNilPizza
	}
	for _, t := range toppings {
		var err error
		p, err = t.Decorate(p)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

type toppedPizza struct {
	Pizza   Pizza
	Topping Topping
}

func (p toppedPizza) Price() float64 {
	return p.Pizza.Price() + p.Topping.Price
}

func (p toppedPizza) Text() string {
	return p.Pizza.Text() + " with " + p.Topping.Name
}
