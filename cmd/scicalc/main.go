package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/config"
)

var (
	version = "dev"
	cli     struct {
		Globals

		Eval evalCmd `cmd:"" default:"withargs" help:"Evaluate expressions given as arguments or one per input line."`
		Repl replCmd `cmd:"" help:"Start an interactive calculator session."`
	}
)

// Globals are flags shared by all commands.
type Globals struct {
	Version  kong.VersionFlag `help:"Print the version and exit."`
	Config   string           `help:"Configuration file." default:"${config_file}"`
	Degrees  bool             `help:"Use degrees for trigonometric functions." xor:"mode"`
	Radians  bool             `help:"Use radians for trigonometric functions." xor:"mode"`
	Explain  bool             `help:"Print the reason for each error instead of Error."`
	LogLevel string           `help:"Log level (debug, info, warn, error)."`
}

// env is the environment commands run in.
type env struct {
	conf    *config.Config
	log     zerolog.Logger
	mode    scicalc.AngleMode
	explain bool
	stdin   io.Reader
	stdout  io.Writer
}

// setup loads the configuration and applies flags over it.
func (g *Globals) setup(stdin io.Reader, stdout, stderr io.Writer) (*env, error) {
	conf, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		conf.LogLevel = g.LogLevel
	}
	lvl, err := conf.Level()
	if err != nil {
		return nil, err
	}
	switch {
	case g.Degrees:
		conf.Degrees = true
	case g.Radians:
		conf.Degrees = false
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(lvl).With().Timestamp().Logger()
	log.Debug().Str("config", g.Config).Stringer("mode", conf.Mode()).Msg("configured")
	return &env{
		conf:    conf,
		log:     log,
		mode:    conf.Mode(),
		explain: g.Explain || conf.Explain,
		stdin:   stdin,
		stdout:  stdout,
	}, nil
}

// display is the text shown for a failed evaluation.
func (e *env) display(err error) string {
	if e.explain {
		return "Error: " + err.Error()
	}
	return "Error"
}

// errFailed reports that at least one expression could not be evaluated.
var errFailed = errors.New("some expressions failed")

func defaultConfig() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scicalc", "config.toml")
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("scicalc"),
		kong.Description(`A scientific calculator.`),
		kong.UsageOnError(),
		kong.Vars{"version": version, "config_file": defaultConfig()},
	)
	e, err := cli.Globals.setup(os.Stdin, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(e)
	kctx.FatalIfErrorf(err)
}
