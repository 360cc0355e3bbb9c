package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/session"
)

type replCmd struct{}

func (c *replCmd) Run(e *env) error {
	s := session.New(e.log, e.mode)
	if err := loadHistory(s, e.conf.HistoryFile); err != nil {
		e.log.Warn().Err(err).Str("file", e.conf.HistoryFile).Msg("history not loaded")
	}
	err := repl(e, s, e.stdin, e.stdout)
	if e.conf.HistoryFile != "" {
		if err := saveHistory(s, e.conf.HistoryFile); err != nil {
			e.log.Error().Err(err).Str("file", e.conf.HistoryFile).Msg("history not saved")
		}
	}
	return err
}

const replHelp = `Enter an expression, or one of:
  :deg :rad      set the angle mode
  :mc :mr        clear or recall memory
  :m+ :m-        add or subtract the last answer to or from memory
  :ans :ip       show the last answer or the last input
  :wrap FUNC     apply FUNC to the last input
  :sq :cube      square or cube the last input
  :del           drop the last character of the last input
  :history       show all answers
  :dump          show the session state
  :save FILE     write the history to FILE
  :quit          leave
Ans in an expression is the last answer.`

// repl runs an interactive session until in is exhausted or the user quits.
func repl(e *env, s *session.Session, in io.Reader, out io.Writer) error {
	scan := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, e.conf.Prompt)
		if !scan.Scan() {
			fmt.Fprintln(out)
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		if !strings.HasPrefix(line, ":") {
			evaluate(e, s, out, line)
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)
		switch cmd {
		case ":deg":
			s.SetMode(scicalc.Degrees)
			fmt.Fprintln(out, "degrees")
		case ":rad":
			s.SetMode(scicalc.Radians)
			fmt.Fprintln(out, "radians")
		case ":mc":
			s.MemoryClear()
		case ":mr":
			fmt.Fprintln(out, s.MemoryRecall())
		case ":m+":
			s.MemoryAdd(s.Answer())
			fmt.Fprintln(out, "M="+s.MemoryRecall())
		case ":m-":
			s.MemorySubtract(s.Answer())
			fmt.Fprintln(out, "M="+s.MemoryRecall())
		case ":ans":
			fmt.Fprintln(out, s.Answer())
		case ":ip":
			fmt.Fprintln(out, s.LastInput())
		case ":history":
			for _, h := range s.History() {
				fmt.Fprintln(out, h)
			}
		case ":wrap":
			if arg == "" {
				fmt.Fprintln(out, "usage: :wrap FUNC")
				continue
			}
			evaluate(e, s, out, session.WrapFunc(s.LastInput(), arg))
		case ":sq":
			evaluate(e, s, out, session.WrapPower(s.LastInput(), "^2"))
		case ":cube":
			evaluate(e, s, out, session.WrapPower(s.LastInput(), "^3"))
		case ":del":
			evaluate(e, s, out, session.Backspace(s.LastInput()))
		case ":dump":
			repr.New(out, repr.Indent("  ")).Println(struct {
				Mode    string
				Memory  string
				History []session.Entry
			}{s.Mode().String(), s.MemoryRecall(), s.History()})
		case ":save":
			if arg == "" {
				fmt.Fprintln(out, "usage: :save FILE")
				continue
			}
			if err := saveHistory(s, arg); err != nil {
				fmt.Fprintln(out, e.display(err))
			}
		case ":help", ":?":
			fmt.Fprintln(out, replHelp)
		case ":quit", ":q", ":exit":
			return nil
		default:
			fmt.Fprintf(out, "unknown command %s (try :help)\n", cmd)
		}
	}
}

// evaluate prints the result of one input line. The edit commands also come
// through here, so their edited input becomes the new last input.
func evaluate(e *env, s *session.Session, out io.Writer, line string) {
	r, err := s.Evaluate(line)
	switch {
	case err != nil:
		fmt.Fprintln(out, e.display(err))
	case r != "":
		fmt.Fprintln(out, r)
	}
}

func loadHistory(s *session.Session, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	return s.LoadHistory(f)
}

func saveHistory(s *session.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.SaveHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
