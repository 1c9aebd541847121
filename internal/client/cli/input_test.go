package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.Error(t, err)
}

func TestGetTextOrKeep(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextOrKeep(rdr("\n"), "Title", "Old", &out)
	require.NoError(t, err)
	assert.Equal(t, "Old", got)
	assert.Contains(t, out.String(), "Title [Old]")

	got, err = GetTextOrKeep(rdr("New\n"), "Title", "Old", &out)
	require.NoError(t, err)
	assert.Equal(t, "New", got)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\nrest\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultiline_EOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultilineOrKeep(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultilineOrKeep(rdr("\n"), "Steps", "boil", &out)
	require.NoError(t, err)
	assert.Equal(t, "boil", got)
}

func TestInteractive_UsesSeam(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	isTerminal = func(int) bool { return true }
	assert.True(t, interactive())
	isTerminal = func(int) bool { return false }
	assert.False(t, interactive())
}
