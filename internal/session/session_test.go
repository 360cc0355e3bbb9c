package session_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/session"
)

func TestEvaluate(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Degrees)
	out, err := s.Evaluate("sin(90)")
	require.NoError(t, err)
	assert.Equal(t, "1", out)

	s.SetMode(scicalc.Radians)
	out, err = s.Evaluate("cos(0)*2")
	require.NoError(t, err)
	assert.Equal(t, "2", out)

	out, err = s.Evaluate("5P3")
	require.NoError(t, err)
	assert.Equal(t, "60", out)

	want := []session.Entry{
		{Input: "sin(90)", Output: "1"},
		{Input: "cos(0)*2", Output: "2"},
		{Input: "5P3", Output: "60"},
	}
	assert.Equal(t, want, s.History(), repr.String(s.History(), repr.Indent("  ")))
	assert.Equal(t, "60", s.Answer())
	assert.Equal(t, "5P3", s.LastInput())
}

func TestEvaluateFailure(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Degrees)
	_, err := s.Evaluate("7")
	require.NoError(t, err)

	out, err := s.Evaluate("1/0")
	assert.ErrorIs(t, err, scicalc.ErrDivisionByZero)
	assert.Empty(t, out)
	_, err = s.Evaluate("sqrt(-1)")
	assert.ErrorIs(t, err, scicalc.ErrDomain)

	assert.Len(t, s.History(), 1, repr.String(s.History()))
	assert.Equal(t, "7", s.Answer())
	assert.Equal(t, "7", s.LastInput())
}

func TestEvaluateEmpty(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Degrees)
	out, err := s.Evaluate("   ")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Empty(t, s.History())
}

func TestAnswer(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Radians)
	assert.Equal(t, "0", s.Answer())
	out, err := s.Evaluate("Ans+4")
	require.NoError(t, err)
	assert.Equal(t, "4", out)
	out, err = s.Evaluate("Ans*Ans")
	require.NoError(t, err)
	assert.Equal(t, "16", out)
	out, err = s.Evaluate("-Ans")
	require.NoError(t, err)
	assert.Equal(t, "-16", out)
	out, err = s.Evaluate("2*Ans")
	require.NoError(t, err)
	assert.Equal(t, "-32", out)
	// The history keeps what was typed.
	assert.Equal(t, "2*Ans", s.LastInput())
}

func TestAnswerIsOneOperand(t *testing.T) {
	cases := []struct {
		name  string
		prev  string
		input string
		want  string
	}{
		{"neg-power", "-5", "Ans^2", "25"},
		{"neg-sub", "-5", "3-Ans", "8"},
		{"fact", "4", "fact(Ans)", "24"},
		{"frac", "1/4", "Ans*Ans", "0.0625"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := session.New(zerolog.Nop(), scicalc.Radians)
			_, err := s.Evaluate(c.prev)
			require.NoError(t, err)
			out, err := s.Evaluate(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.want, out)
		})
	}
}

func TestAnswerDoesNotJoinTokens(t *testing.T) {
	cases := []struct {
		name  string
		prev  string
		input string
	}{
		{"digit-before", "5", "2Ans"},
		{"digit-after", "5", "Ans2"},
		{"combinatoric", "60", "AnsC2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := session.New(zerolog.Nop(), scicalc.Radians)
			_, err := s.Evaluate(c.prev)
			require.NoError(t, err)
			out, err := s.Evaluate(c.input)
			require.ErrorIs(t, err, scicalc.ErrUnexpectedCharacter, "got %q", out)
			assert.Equal(t, c.prev, s.Answer())
		})
	}
}

func TestMemory(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Degrees)
	assert.Equal(t, "0", s.MemoryRecall())
	s.MemoryAdd("2.5")
	s.MemoryAdd("0.5")
	assert.Equal(t, "3", s.MemoryRecall())
	s.MemorySubtract("10")
	assert.Equal(t, "-7", s.MemoryRecall())
	s.MemoryAdd("Error")
	assert.Equal(t, "-7", s.MemoryRecall())
	s.MemoryClear()
	assert.Equal(t, "0", s.MemoryRecall())
}

func TestHistoryPersistence(t *testing.T) {
	s := session.New(zerolog.Nop(), scicalc.Degrees)
	for _, in := range []string{"1+1", "fact(4)", "1/4"} {
		_, err := s.Evaluate(in)
		require.NoError(t, err)
	}
	var buf bytes.Buffer
	require.NoError(t, s.SaveHistory(&buf))
	assert.Contains(t, buf.String(), "input: fact(4)")
	assert.Contains(t, buf.String(), `output: "24"`)

	r := session.New(zerolog.Nop(), scicalc.Radians)
	require.NoError(t, r.LoadHistory(&buf))
	assert.Equal(t, s.History(), r.History())
	assert.Equal(t, "0.25", r.Answer())
	assert.Equal(t, "1/4", r.LastInput())

	e := session.New(zerolog.Nop(), scicalc.Radians)
	require.NoError(t, e.LoadHistory(strings.NewReader("")))
	assert.Empty(t, e.History())

	assert.Error(t, e.LoadHistory(strings.NewReader("input: [")))
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "2+2=4", session.Entry{Input: "2+2", Output: "4"}.String())
}

func TestEditing(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"wrap-empty", session.WrapFunc("", "sin"), "sin("},
		{"wrap", session.WrapFunc("45", "sin"), "sin(45)"},
		{"wrap-expr", session.WrapFunc("(1+2)", "fact"), "fact((1+2))"},
		{"power", session.WrapPower("1+2", "^2"), "(1+2)^2"},
		{"power-empty", session.WrapPower("", "^3"), ""},
		{"backspace", session.Backspace("123"), "12"},
		{"backspace-glyph", session.Backspace("2π"), "2"},
		{"backspace-empty", session.Backspace(""), ""},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: want %q, got %q", c.name, c.want, c.got)
		}
	}
}
