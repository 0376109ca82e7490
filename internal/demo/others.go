package demo

import (
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/patterns/pkg/decorator"
	"github.com/adamluzsi/patterns/pkg/generics"
	"github.com/adamluzsi/patterns/pkg/linkedlist"
	"github.com/adamluzsi/patterns/pkg/visitor"
)

// DecoratorCommand prints a plain pizza, then the same pizza decorated with a topping.
type DecoratorCommand struct {
	Topping string  `flag:"topping" default:"mushroom" desc:"name of the topping"`
	Price   float64 `flag:"price" default:"1" desc:"price of the topping"`
	Thin    bool    `flag:"thin" default:"false" desc:"use a thin crust"`

	Logger *logging.Logger
}

func (cmd DecoratorCommand) Summary() string { return "decorate a pizza with a topping" }

func (cmd DecoratorCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	l := loggerOrDiscard(cmd.Logger)
	ctx := start(r.Context(), l, "decorator")

	var p decorator.Pizza = decorator.NormalCrust{}
	if cmd.Thin {
		p = decorator.ThinCrust{}
	}
	out := &lineWriter{w: w}
	out.Println(p.Text())
	out.Println(p.Price())

	p, err := decorator.WithTopping(p, cmd.Topping, cmd.Price)
	if err != nil {
		fail(ctx, l, w, err)
		return
	}
	out.Println(p.Text())
	out.Println(p.Price())
	if out.err != nil {
		fail(ctx, l, w, out.err)
		return
	}

	l.Info(ctx, "demo finished")
}

// IteratorCommand prints every element of a small linked list.
type IteratorCommand struct {
	Logger *logging.Logger
}

func (cmd IteratorCommand) Summary() string { return "iterate over a linked list" }

func (cmd IteratorCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	l := loggerOrDiscard(cmd.Logger)
	ctx := start(r.Context(), l, "iterator")

	out := &lineWriter{w: w}
	i := linkedlist.New(1, 2, 3).Iterator()
	defer i.Close()
	for i.Next() {
		out.Println(i.Value())
	}
	if err := i.Err(); err != nil {
		fail(ctx, l, w, err)
		return
	}
	if out.err != nil {
		fail(ctx, l, w, out.err)
		return
	}

	l.Info(ctx, "demo finished")
}

// GenericsCommand shows type parameter inference and variadic printing.
type GenericsCommand struct {
	Logger *logging.Logger
}

func (cmd GenericsCommand) Summary() string { return "explore type parameters" }

func (cmd GenericsCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	l := loggerOrDiscard(cmd.Logger)
	ctx := start(r.Context(), l, "generics")

	out := &lineWriter{w: w}
	out.Println(generics.Add(1, 2))
	out.Println(generics.Add("hello", " world"))
	out.Println(generics.AddAs[float32](1, 2))
	if out.err != nil {
		fail(ctx, l, w, out.err)
		return
	}
	if err := generics.Fprint(w, "Hello", 5, "goodbye", 25.5, "a", "\n"); err != nil {
		fail(ctx, l, w, err)
		return
	}

	l.Info(ctx, "demo finished")
}

// VisitorCommand shows double dispatch on enemies and weapons, and on visitable elements.
type VisitorCommand struct {
	Logger *logging.Logger
}

func (cmd VisitorCommand) Summary() string { return "double dispatch with visitors" }

func (cmd VisitorCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	l := loggerOrDiscard(cmd.Logger)
	ctx := start(r.Context(), l, "visitor")

	out := &lineWriter{w: w}
	for _, e := range []visitor.Enemy{&visitor.Turtle{}, &visitor.Tortoise{}} {
		for _, wp := range []visitor.Weapon{visitor.Stick{}, visitor.Sword{}} {
			out.Println(e.BeStruckBy(wp))
		}
	}
	for _, e := range []visitor.Element{&visitor.A{}, &visitor.B{}} {
		for _, line := range e.Accept(visitor.Lel{}) {
			out.Println(line)
		}
	}
	if out.err != nil {
		fail(ctx, l, w, out.err)
		return
	}

	l.Info(ctx, "demo finished")
}
