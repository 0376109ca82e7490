package demo

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/patterns/internal/roster"
	"github.com/adamluzsi/patterns/pkg/composite"
)

// CompositeCommand walks a roster with a composite cursor,
// and prints every visited entity's name and value, one per line.
type CompositeCommand struct {
	Tree  bool `flag:"tree" default:"false" desc:"indent every entity by its depth in the roster"`
	Human bool `flag:"human" default:"false" desc:"print values with thousands separators"`

	Logger *logging.Logger
	// Root is the roster to walk.
	// When nil, the sample hero roster is used.
	Root composite.Entity
}

func (cmd CompositeCommand) Summary() string {
	return "traverse a nested roster of heroes with a composite cursor"
}

func (cmd CompositeCommand) ServeCLI(w cli.ResponseWriter, r *cli.Request) {
	l := loggerOrDiscard(cmd.Logger)
	ctx := start(r.Context(), l, "composite")

	root, err := cmd.root()
	if err != nil {
		fail(ctx, l, w, err)
		return
	}

	out := &lineWriter{w: w}
	cursor := root.Cursor()
	var visited int
	for cursor.HasNext() {
		e, err := cursor.Next()
		if err != nil {
			fail(ctx, l, w, err)
			return
		}
		visited++
		l.Debug(ctx, "entity visited",
			logging.Field("name", e.Name()),
			logging.Field("value", e.Value()))

		var indent string
		if cmd.Tree {
			indent = strings.Repeat("  ", composite.Depth(root, e))
		}
		out.Printf("%s%s : %s\n", indent, e.Name(), cmd.format(e.Value()))
		if out.err != nil {
			fail(ctx, l, w, out.err)
			return
		}
	}

	l.Info(ctx, "demo finished", logging.Field("visited", visited))
}

func (cmd CompositeCommand) root() (composite.Entity, error) {
	if cmd.Root != nil {
		return cmd.Root, nil
	}
	return roster.Heroes()
}

func (cmd CompositeCommand) format(v int) string {
	if cmd.Human {
		return humanize.Comma(int64(v))
	}
	return strconv.Itoa(v)
}
