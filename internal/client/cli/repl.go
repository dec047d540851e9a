package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const helpText = `Available commands:
  home                                  show the home sections
  search <text>                         search educational videos
  voice <transcript>                    search with a voice transcript
  upload <path> [title] [description]   upload a video file
  list                                  list my uploaded videos
  delete <id>                           delete an uploaded video
  help                                  show this help
  exit | quit                           leave the program
Quote arguments that contain spaces: upload "my talk.mp4" "Intro to Go"`

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	Home(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Upload(ctx context.Context, path, title, description string) error
	List(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads commands from reader until EOF or exit. Prompts issued by
// commands share the same reader. Command errors are printed and
// the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "edutube %s> ", statusFn())
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}

		parts, err := splitArgs(strings.TrimRight(line, "\r\n"))
		if err != nil {
			fmt.Fprintln(w, "Error:", err)
			continue
		}
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "home":
			err = a.Home(ctx)

		case "search", "voice":
			if len(args) == 0 {
				fmt.Fprintf(w, "Usage: %s <text>\n", cmd)
				continue
			}
			err = a.Search(ctx, strings.Join(args, " "))

		case "upload":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: upload <path> [title] [description]")
				continue
			}
			var title, description string
			if len(args) > 1 {
				title = args[1]
			}
			if len(args) > 2 {
				description = strings.Join(args[2:], " ")
			}
			err = a.Upload(ctx, args[0], title, description)

		case "l", "list":
			err = a.List(ctx)

		case "delete":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: delete <id>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
		if readErr != nil {
			return
		}
	}
}

// splitArgs splits a line on whitespace, keeping "double quoted" runs
// together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}

	if inQuote {
		return nil, fmt.Errorf("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}
