package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) Home(context.Context) error {
	f.calls = append(f.calls, "home")
	return f.err
}

func (f *fakeExec) Search(_ context.Context, q string) error {
	f.calls = append(f.calls, "search:"+q)
	return f.err
}

func (f *fakeExec) Upload(_ context.Context, path, title, description string) error {
	f.calls = append(f.calls, "upload:"+path+"|"+title+"|"+description)
	return f.err
}

func (f *fakeExec) List(context.Context) error {
	f.calls = append(f.calls, "list")
	return f.err
}

func (f *fakeExec) Delete(_ context.Context, id string) error {
	f.calls = append(f.calls, "delete:"+id)
	return f.err
}

func runLines(t *testing.T, fe *fakeExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), fe, func() string { return "(online) " }, bufio.NewReader(strings.NewReader(input)), &out)
	return out.String()
}

func TestREPL_Dispatch(t *testing.T) {
	fe := &fakeExec{}
	input := strings.Join([]string{
		"home",
		"search what is recursion",
		"voice how to  tie a knot",
		`upload "/tmp/my talk.mp4" "Intro to Go" first lesson`,
		"upload clip.mp4",
		"list",
		"l",
		"delete abc",
		"",
		"exit",
		"home",
	}, "\n") + "\n"

	out := runLines(t, fe, input)

	assert.Equal(t, []string{
		"home",
		"search:what is recursion",
		"search:how to tie a knot",
		"upload:/tmp/my talk.mp4|Intro to Go|first lesson",
		"upload:clip.mp4||",
		"list",
		"list",
		"delete:abc",
	}, fe.calls)
	assert.Contains(t, out, "edutube (online) > ")
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UsageAndUnknown(t *testing.T) {
	fe := &fakeExec{}
	out := runLines(t, fe, "search\nvoice\nupload\ndelete\ndelete a b\nfrobnicate\nhelp\n")

	assert.Empty(t, fe.calls)
	assert.Contains(t, out, "Usage: search <text>")
	assert.Contains(t, out, "Usage: voice <text>")
	assert.Contains(t, out, "Usage: upload <path> [title] [description]")
	assert.Contains(t, out, "Usage: delete <id>")
	assert.Contains(t, out, "Unknown command: frobnicate")
	assert.Contains(t, out, "Available commands:")
}

func TestREPL_PrintsErrorsAndContinues(t *testing.T) {
	fe := &fakeExec{err: errors.New("server returned 502: Could not fetch search results")}
	out := runLines(t, fe, "search go\nlist\n")

	assert.Equal(t, []string{"search:go", "list"}, fe.calls)
	assert.Equal(t, 2, strings.Count(out, "Error: server returned 502"))
}

func TestREPL_LastLineWithoutNewline(t *testing.T) {
	fe := &fakeExec{}
	runLines(t, fe, "list")
	assert.Equal(t, []string{"list"}, fe.calls)
}

func TestREPL_UnterminatedQuote(t *testing.T) {
	fe := &fakeExec{}
	out := runLines(t, fe, "search \"open\n")
	assert.Empty(t, fe.calls)
	assert.Contains(t, out, "unterminated quote")
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"list", []string{"list"}},
		{"search  go\tgenerics ", []string{"search", "go", "generics"}},
		{`upload "a b.mp4" title`, []string{"upload", "a b.mp4", "title"}},
		{`upload x ""`, []string{"upload", "x", ""}},
		{`say he"llo wor"ld`, []string{"say", "hello world"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := splitArgs(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
