package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunLine(t *testing.T) {
	var out bytes.Buffer
	err := run(zerolog.Nop(), "add 1 2 3.5", nil, &out)
	require.NoError(t, err)
	require.Equal(t, "6.5\n", out.String())
}

func TestRunStdin(t *testing.T) {
	in := strings.NewReader("mul 2 3 4\n\n/ 1 0\nsub 10 4\n")
	var out bytes.Buffer
	err := run(zerolog.Nop(), "", in, &out)
	require.ErrorIs(t, err, errFailed)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "24", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "Error:"), lines[1])
	require.Equal(t, "6", lines[2])
}
