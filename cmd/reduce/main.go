// Command reduce folds lists of numbers, e.g. "reduce add 1 2 3".
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/reduce"
)

var (
	grammarFlag = kingpin.Flag("grammar", "Print the command grammar and exit.").Bool()
	verboseFlag = kingpin.Flag("verbose", "Log each command.").Short('v').Bool()
	commandArgs = kingpin.Arg("command", "Operation and operands. Commands are read one per line from stdin if omitted.").Strings()
)

var errFailed = errors.New("some commands failed")

// run executes one command, or each line of in when line is empty.
func run(log zerolog.Logger, line string, in io.Reader, out io.Writer) error {
	if line != "" {
		return runLines(log, []string{line}, out)
	}
	var lines []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if l := strings.TrimSpace(scan.Text()); l != "" {
			lines = append(lines, l)
		}
	}
	if err := scan.Err(); err != nil {
		return err
	}
	return runLines(log, lines, out)
}

func runLines(log zerolog.Logger, lines []string, out io.Writer) error {
	var failed bool
	for _, line := range lines {
		cmd, err := reduce.ParseCommand(line)
		if err != nil {
			log.Warn().Str("command", line).Err(err).Msg("parse failed")
			fmt.Fprintln(out, "Error:", err)
			failed = true
			continue
		}
		r, err := cmd.Run()
		if err != nil {
			log.Warn().Str("command", line).Err(err).Msg("reduction failed")
			fmt.Fprintln(out, "Error:", err)
			failed = true
			continue
		}
		log.Info().Str("op", cmd.Op).Int("operands", len(cmd.Operands)).Float64("result", r).Msg("reduced")
		fmt.Fprintln(out, scicalc.Format(r))
	}
	if failed {
		return errFailed
	}
	return nil
}

func main() {
	kingpin.CommandLine.Help = "Fold numbers with add, subtract, multiply, or divide."
	kingpin.Parse()

	if *grammarFlag {
		fmt.Println(reduce.Grammar())
		return
	}
	lvl := zerolog.WarnLevel
	if *verboseFlag {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	err := run(log, strings.Join(*commandArgs, " "), os.Stdin, os.Stdout)
	kingpin.FatalIfError(err, "")
}
