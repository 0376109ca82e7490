// Package demo contains the command line handlers that run the pattern demonstrations.
package demo

import (
	"context"
	"fmt"
	"io"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logging"
)

// NewMux registers every demonstration under its own command name.
func NewMux(l *logging.Logger) *cli.Mux {
	var mux cli.Mux
	mux.Handle("composite", CompositeCommand{Logger: l})
	mux.Handle("decorator", DecoratorCommand{Logger: l})
	mux.Handle("iterator", IteratorCommand{Logger: l})
	mux.Handle("generics", GenericsCommand{Logger: l})
	mux.Handle("visitor", VisitorCommand{Logger: l})
	return &mux
}

var discard = &logging.Logger{Out: io.Discard}

func loggerOrDiscard(l *logging.Logger) *logging.Logger {
	if l == nil {
		return discard
	}
	return l
}

// start attaches the run's identity to the context and logs that the demo started.
func start(ctx context.Context, l *logging.Logger, name string) context.Context {
	ctx = logging.ContextWith(ctx,
		logging.Field("demo", name),
		logging.Field("run_id", uuid.NewV4().String()),
	)
	l.Info(ctx, "demo started")
	return ctx
}

// fail reports err on the error output and marks the run as failed.
func fail(ctx context.Context, l *logging.Logger, w cli.ResponseWriter, err error) {
	l.Error(ctx, "demo failed", logging.ErrField(err))
	var out io.Writer = w
	if ew, ok := w.(cli.ErrorWriter); ok {
		if o := ew.Stderr(); o != nil {
			out = o
		}
	}
	fmt.Fprintln(out, err.Error())
	w.ExitCode(cli.ExitCodeError)
}

// lineWriter prints lines until the first write error, which it keeps.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) Println(vs ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintln(lw.w, vs...)
}

func (lw *lineWriter) Printf(format string, vs ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, vs...)
}
