package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zephyrtronium/scicalc"
)

type evalCmd struct {
	In    string   `short:"i" type:"path" help:"Input file, one expression per line (default stdin if no expressions are given)."`
	Exprs []string `arg:"" optional:"" help:"Expressions to evaluate."`
}

func (c *evalCmd) Run(e *env) error {
	if len(c.Exprs) > 0 {
		return evalAll(e, c.Exprs)
	}
	in := e.stdin
	if c.In != "" && c.In != "-" {
		f, err := os.Open(c.In)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return evalLines(e, in)
}

// evalLines evaluates each non-blank line of in.
func evalLines(e *env, in io.Reader) error {
	var exprs []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if line := scan.Text(); strings.TrimSpace(line) != "" {
			exprs = append(exprs, line)
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}
	return evalAll(e, exprs)
}

// evalAll evaluates each expression and prints one line per result.
func evalAll(e *env, exprs []string) error {
	var failed int
	for _, src := range exprs {
		r, err := scicalc.Calculate(src, e.mode)
		if err != nil {
			e.log.Info().Str("expr", src).Err(err).Msg("evaluation failed")
			fmt.Fprintln(e.stdout, e.display(err))
			failed++
			continue
		}
		fmt.Fprintln(e.stdout, scicalc.Format(r))
	}
	if failed > 0 {
		e.log.Debug().Int("failed", failed).Int("total", len(exprs)).Msg("done")
		return errFailed
	}
	return nil
}
