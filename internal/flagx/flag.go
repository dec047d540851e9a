// Package flagx lets several independent flag sets share one command line.
// Each loader picks out only the flags it owns, so the JSON loader, the
// server flags and the CLI flags never trip over each other's names.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps the arguments that belong to one of the known flags.
//
// Both "-k value" and "-k=value" forms are understood. A value is only taken
// from the following argument when that argument does not itself start
// with a dash. Order is preserved and the result is never nil.
func FilterArgs(args []string, known []string) []string {
	names := make(map[string]bool, len(known))
	for _, k := range known {
		names[k] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if names[name] {
				out = append(out, arg)
			}
			continue
		}

		if !names[arg] {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}

	return out
}

// ConfigFilePath returns the JSON config path given with -c or -config, or
// "" when neither is present. When both appear the last one wins.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
