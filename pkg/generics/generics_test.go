package generics_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/patterns/pkg/generics"
)

type Celsius float64

func TestAdd(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, generics.Add(1, 2))
	require.Equal(t, "hello world", generics.Add("hello", " world"))
	require.Equal(t, 3.5, generics.Add(1.25, 2.25))
	require.Equal(t, Celsius(21.5), generics.Add(Celsius(20), Celsius(1.5)))
}

func TestAddAs(t *testing.T) {
	t.Parallel()

	require.Equal(t, float32(3), generics.AddAs[float32](1, 2))
	require.Equal(t, 3.5, generics.AddAs[float64](int8(1), float32(2.5)))
	require.Equal(t, int64(3), generics.AddAs[int64](uint8(1), 2))
}

func TestSum(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, generics.Sum[int]())
	require.Equal(t, 10, generics.Sum(1, 2, 3, 4))
	require.Equal(t, "abc", generics.Sum("a", "b", "c"))
}

func TestSprint(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Hello5goodbye25.5a", generics.Sprint("Hello", 5, "goodbye", 25.5, "a"))
	require.Equal(t, "", generics.Sprint())
}

func TestFprint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, generics.Fprint(&buf, "x", 1, true))
	require.Equal(t, "x1true", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errBroken }

var errBroken = errors.New("broken")

func TestFprint_WriterFails_ErrorReturned(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, generics.Fprint(brokenWriter{}, "x"), errBroken)
}
