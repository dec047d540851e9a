package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	t.Run("reads and trims a line", func(t *testing.T) {
		var out bytes.Buffer
		got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  Intro to Go \nnext\n")), "Title:", &out)
		require.NoError(t, err)
		assert.Equal(t, "Intro to Go", got)
		assert.Equal(t, "Title:\n> ", out.String())
	})

	t.Run("partial line at EOF", func(t *testing.T) {
		got, err := GetSimpleText(bufio.NewReader(strings.NewReader("last")), "p", io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "last", got)
	})

	t.Run("empty input is EOF", func(t *testing.T) {
		_, err := GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", io.Discard)
		assert.ErrorIs(t, err, io.EOF)
	})
}
