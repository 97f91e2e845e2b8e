package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  demo \n"))

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "demo", got)
	require.Contains(t, out.String(), "Enter username")
}

func TestGetSimpleText_PartialLineOnEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("demo"))

	got, err := GetSimpleText(r, "Enter username", &out)
	require.NoError(t, err)
	require.Equal(t, "demo", got)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "secret", got)
	require.Contains(t, out.String(), "Enter password")
}
