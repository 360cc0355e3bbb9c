// Package session keeps the state of an interactive calculator: angle mode,
// the last answer, memory, and history.
package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/scicalc"
)

// ErrorText is what a calculator display shows for any failed evaluation.
const ErrorText = "Error"

// Entry is one successful evaluation.
type Entry struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

func (e Entry) String() string {
	return e.Input + "=" + e.Output
}

// Session is a calculator session. It is not safe to use a Session
// concurrently.
type Session struct {
	log     zerolog.Logger
	mode    scicalc.AngleMode
	memory  string
	last    string
	history []Entry
}

// New creates a session with empty memory and history.
func New(log zerolog.Logger, mode scicalc.AngleMode) *Session {
	return &Session{log: log, mode: mode, memory: "0"}
}

// Mode returns the angle mode used for evaluation.
func (s *Session) Mode() scicalc.AngleMode {
	return s.mode
}

// SetMode changes the angle mode used for evaluation.
func (s *Session) SetMode(mode scicalc.AngleMode) {
	s.log.Debug().Stringer("mode", mode).Msg("angle mode")
	s.mode = mode
}

// Evaluate computes input and returns its display text. Each Ans in input is
// replaced by the previous answer in parentheses first, so it stays one
// operand: with Ans=-5, Ans^2 is 25. Successful evaluations are added to
// the history; failures change nothing. Empty input gives empty output.
func (s *Session) Evaluate(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	expr := strings.ReplaceAll(input, "Ans", "("+s.Answer()+")")
	r, err := scicalc.Calculate(expr, s.mode)
	if err != nil {
		s.log.Warn().Str("input", input).Err(err).Msg("evaluation failed")
		return "", err
	}
	out := scicalc.Format(r)
	s.log.Debug().Str("input", input).Str("output", out).Stringer("mode", s.mode).Msg("evaluated")
	s.last = input
	s.history = append(s.history, Entry{Input: input, Output: out})
	return out, nil
}

// Answer is the output of the most recent successful evaluation, or "0".
func (s *Session) Answer() string {
	if len(s.history) == 0 {
		return "0"
	}
	return s.history[len(s.history)-1].Output
}

// LastInput is the input of the most recent successful evaluation.
func (s *Session) LastInput() string {
	return s.last
}

// History returns a copy of the session's history, oldest first.
func (s *Session) History() []Entry {
	return append([]Entry(nil), s.history...)
}

// MemoryClear sets memory to zero.
func (s *Session) MemoryClear() {
	s.memory = "0"
}

// MemoryRecall returns the memory as display text.
func (s *Session) MemoryRecall() string {
	return s.memory
}

// MemoryAdd adds the number shown by display to memory. Text that is not a
// number counts as zero.
func (s *Session) MemoryAdd(display string) {
	s.memory = scicalc.Format(parseDisplay(s.memory) + parseDisplay(display))
}

// MemorySubtract subtracts the number shown by display from memory. Text that
// is not a number counts as zero.
func (s *Session) MemorySubtract(display string) {
	s.memory = scicalc.Format(parseDisplay(s.memory) - parseDisplay(display))
}

func parseDisplay(text string) float64 {
	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return x
}

// SaveHistory writes the history as YAML.
func (s *Session) SaveHistory(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.history); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	return nil
}

// LoadHistory replaces the history with entries read as YAML. The last
// entry becomes the current answer and last input.
func (s *Session) LoadHistory(r io.Reader) error {
	var h []Entry
	if err := yaml.NewDecoder(r).Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("loading history: %w", err)
	}
	s.history = h
	s.last = ""
	if len(h) > 0 {
		s.last = h[len(h)-1].Input
	}
	s.log.Debug().Int("entries", len(h)).Msg("loaded history")
	return nil
}
