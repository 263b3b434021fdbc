// Command restbind inspects API descriptions and calls their operations.
//
//	restbind ops --service storage
//	restbind call storage buckets get bucket=photos projection=full
//	restbind call --doc petstore.yaml --dry-run pets list limit=10
//	restbind schema sqladmin SslCertsInsertRequest
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/broady/restbind/cmd/restbind/internal/config"
)

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Print version information."`
	Check   CheckCmd   `cmd:"" help:"Parse and validate API description documents."`
	Ops     OpsCmd     `cmd:"" help:"List the operations of one or more services."`
	Call    CallCmd    `cmd:"" help:"Call an operation by name."`
	Schema  SchemaCmd  `cmd:"" help:"Print the JSON Schema of a model."`
}

type Globals struct {
	Config   string `help:"Configuration file (default: ./restbind.yaml if present)." short:"c" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn or error. Overrides the configuration." name:"log-level"`
}

// app is bound into every command's Run method.
type app struct {
	in     io.Reader
	out    io.Writer
	cfg    *config.Config
	logger *slog.Logger
}

func newApp(g *Globals, stdout, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return &app{
		in:     os.Stdin,
		out:    stdout,
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}, nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintln(a.out, Version())
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("restbind"),
		kong.Description("Inspect REST API descriptions and call their operations."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	a, err := newApp(&cli.Globals, stdout, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(a)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "restbind: %v\n", err)
		os.Exit(1)
	}
}
