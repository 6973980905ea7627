package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var w bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  Teak sofa  \nnext\n"))

	got, err := GetSimpleText(r, "Name", &w)
	require.NoError(t, err)
	assert.Equal(t, "Teak sofa", got)
	assert.Equal(t, "Name\n> ", w.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("9876543210"))

	got, err := GetSimpleText(r, "Phone", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got)

	_, err = GetSimpleText(r, "Phone", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetSecret_FallsBackWithoutTerminal(t *testing.T) {
	origTTY := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = origTTY })

	r := bufio.NewReader(strings.NewReader("cred-asha\n"))
	got, err := GetSecret(r, "Credential", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "cred-asha", got)
}

func TestGetSecret_ReadsFromTerminal(t *testing.T) {
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func() bool { return true }
	t.Cleanup(func() { isTerminal, readPassword = origTTY, origRead })

	readPassword = func(int) ([]byte, error) { return []byte(" secret \n"), nil }
	var w bytes.Buffer
	got, err := GetSecret(bufio.NewReader(strings.NewReader("")), "Credential", &w)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, "Credential: \n", w.String())

	boom := errors.New("tty gone")
	readPassword = func(int) ([]byte, error) { return nil, boom }
	_, err = GetSecret(bufio.NewReader(strings.NewReader("")), "Credential", io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestGetMultiline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("12 MG Road\r\nChennai\n\nleftover\n"))

	got, err := GetMultiline(r, "Address", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "12 MG Road\nChennai", got)

	rest, err := GetSimpleText(r, "", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "leftover", rest)
}

func TestGetMultiline_EOFEndsInput(t *testing.T) {
	got, err := GetMultiline(bufio.NewReader(strings.NewReader("only line")), "Message", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "only line", got)
}
