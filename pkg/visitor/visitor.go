// Package visitor demonstrates double dispatch,
// where the behaviour is selected by the runtime type of two objects instead of one.
//
// The visited value dispatches first, by calling the visitor method that matches its own type,
// then the visitor dispatches second, as the concrete visitor implementation decides what happens.
// New behaviour can be added to a visitable type by writing a new visitor, without touching the type itself.
package visitor

//go:generate mockgen -destination=visitormock/mock.go -package=visitormock github.com/adamluzsi/patterns/pkg/visitor Weapon,Visitor

// Enemy is something that can be struck by a Weapon.
type Enemy interface {
	BeStruckBy(Weapon) string
}

// Weapon has an overload for each kind of Enemy.
type Weapon interface {
	StrikeTurtle(*Turtle) string
	StrikeTortoise(*Tortoise) string
}

type Turtle struct{}

func (t *Turtle) BeStruckBy(w Weapon) string { return w.StrikeTurtle(t) }

type Tortoise struct{}

func (t *Tortoise) BeStruckBy(w Weapon) string { return w.StrikeTortoise(t) }

type Stick struct{}

func (Stick) StrikeTurtle(*Turtle) string     { return "Strike turtle with a stick!" }
func (Stick) StrikeTortoise(*Tortoise) string { return "Strike tortoise with a stick!" }

type Sword struct{}

func (Sword) StrikeTurtle(*Turtle) string     { return "Slash turtle with a sword!" }
func (Sword) StrikeTortoise(*Tortoise) string { return "Slash tortoise with a sword!" }

// Element is a visitable value.
// Accept returns the lines describing the dispatch steps.
type Element interface {
	Accept(Visitor) []string
}

type Visitor interface {
	VisitA(*A) string
	VisitB(*B) string
}

type A struct{}

func (a *A) Accept(v Visitor) []string {
	return []string{"dispatch on A", v.VisitA(a)}
}

type B struct{}

func (b *B) Accept(v Visitor) []string {
	return []string{"dispatch on B", v.VisitB(b)}
}

// Lel is a Visitor that reports which element it visited.
type Lel struct{}

func (Lel) VisitA(*A) string { return "lel: visiting class A" }
func (Lel) VisitB(*B) string { return "lel: visiting class B" }
