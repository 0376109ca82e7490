package roster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/patterns/internal/roster"
	"github.com/adamluzsi/patterns/pkg/composite"
)

func TestHeroes(t *testing.T) {
	t.Parallel()

	heroes, err := roster.Heroes()
	require.NoError(t, err)
	require.Equal(t, "Heroes", heroes.Name())
	require.Equal(t, 1004600050, heroes.Value())
	require.Equal(t, 15, composite.Count(heroes))

	var got []string
	for e := range composite.Walk(heroes) {
		got = append(got, e.Name())
	}
	require.Equal(t, []string{
		"Heroes",
		"MCU",
		"Avengers",
		"Iron Man",
		"Black Widow",
		"Hulk",
		"Thor",
		"Captain America",
		"Doctor Strange",
		"Black Panther",
		"Spider-Men",
		"Miles Morales",
		"Peter Parker",
		"Tobey Maguire",
		"Squirrel Girl",
	}, got)
}

func TestHeroes_FreshCopyEachTime(t *testing.T) {
	t.Parallel()

	a, err := roster.Heroes()
	require.NoError(t, err)
	b, err := roster.Heroes()
	require.NoError(t, err)
	require.False(t, a == b)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		Desc  string
		YAML  string
		Value int
		Err   bool
	}{
		{Desc: "single leaf", YAML: "name: A\nsalary: 10\n", Value: 10},
		{Desc: "empty team", YAML: "name: T\n", Value: 0},
		{Desc: "team with members", YAML: "name: T\nmembers:\n  - name: A\n    salary: 1\n  - name: B\n    salary: 2\n", Value: 3},
		{Desc: "both salary and members", YAML: "name: T\nsalary: 1\nmembers:\n  - name: A\n    salary: 1\n", Err: true},
		{Desc: "missing name", YAML: "salary: 1\n", Err: true},
		{Desc: "unknown field", YAML: "name: A\nwage: 1\n", Err: true},
		{Desc: "empty document", YAML: "", Err: true},
		{Desc: "malformed", YAML: "name: [", Err: true},
	} {
		tc := tc
		t.Run(tc.Desc, func(t *testing.T) {
			e, err := roster.Decode([]byte(tc.YAML))
			if tc.Err {
				require.ErrorIs(t, err, roster.ErrInvalidRoster)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.Value, e.Value())
		})
	}
}
