package main

import (
	"context"
	"os"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"github.com/adamluzsi/patterns/internal/config"
	"github.com/adamluzsi/patterns/internal/demo"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "patterns"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", logging.ErrField(err))
		os.Exit(1)
	}

	l := &logging.Logger{Out: os.Stderr, Level: cfg.Level()}

	os.Args = withDefaultCommand(os.Args)
	cli.Main(ctx, demo.NewMux(l))
}

// withDefaultCommand makes the composite demo run when no command is named,
// including when the arguments start with its flags, as in "patterns -tree".
func withDefaultCommand(args []string) []string {
	if len(args) < 2 {
		return append(args, "composite")
	}
	if strings.HasPrefix(args[1], "-") && !isHelp(args[1]) {
		return slices.Insert(slices.Clone(args), 1, "composite")
	}
	return args
}

func isHelp(arg string) bool {
	switch strings.TrimLeft(arg, "-") {
	case "h", "help":
		return true
	default:
		return false
	}
}
