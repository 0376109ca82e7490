// Package generics explores type parameters: constraint unions,
// type inference and its limits, and variadic functions.
package generics

import (
	"fmt"
	"io"
	"strings"
)

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Float
}

// Addable is every type that supports the + operator.
type Addable interface {
	Number | ~string
}

// Add requires both arguments to have the same type.
// Add(1, 2) and Add("hello", " world") infer T,
// but Add(1.1, 2) with an int variable does not compile.
func Add[T Addable](a, b T) T {
	return a + b
}

// AddAs adds two numbers of possibly different types and returns the result as R.
// R never appears among the arguments, so it can't be inferred and must be given explicitly:
//
//	AddAs[float32](1, 2)
func AddAs[R, A, B Number](a A, b B) R {
	return R(a) + R(b)
}

// Sum folds the values with Add.
// The zero value of T is returned for no values.
func Sum[T Addable](vs ...T) T {
	var total T
	for _, v := range vs {
		total = Add(total, v)
	}
	return total
}

// Fprint writes every argument to w without separators.
// It handles the first argument, then recurses on the rest.
func Fprint(w io.Writer, args ...any) error {
	if len(args) == 0 {
		return nil
	}
	if _, err := fmt.Fprint(w, args[0]); err != nil {
		return err
	}
	return Fprint(w, args[1:]...)
}

// Sprint is Fprint into a string.
func Sprint(args ...any) string {
	var sb strings.Builder
	_ = Fprint(&sb, args...)
	return sb.String()
}
