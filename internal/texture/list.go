// Package texture reads the texture list and turns the referenced PNG files
// into square 2Bx2B source tiles, applying per-texture directives on the
// way.
package texture

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"blockatlas/internal/logging"
)

// Directive is one post-processing step applied to a loaded texture.
type Directive struct {
	Name string
	Args []string
}

// Entry is a texture line of the list: a file, the directory that was
// active when it was read and its directives.
type Entry struct {
	Line       int
	Dir        string
	File       string
	Directives []Directive
}

// directiveArity holds the argument count of each known directive.
var directiveArity = map[string]int{
	"RENAME":     1,
	"DARKEN":     3,
	"OFFSET":     2,
	"OFFSETTILE": 2,
	"EXPAND":     2,
	"CROP":       4,
	"FLIPX":      0,
	"CHEST":      0,
	"LCHEST":     0,
}

// Fields splits a list line on spaces, dropping empty fields and anything
// from the first field that starts with '#'.
func Fields(line string) []string {
	var out []string
	for _, f := range strings.Split(line, " ") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if strings.HasPrefix(f, "#") {
			break
		}
		out = append(out, f)
	}
	return out
}

// ParseList reads a texture list. "$ <dir>" switches the texture directory
// for the following lines, "/ <file> <directives...>" loads a file with
// directives and a bare "<file>" loads it as is. dir is the directory in
// effect before the first switch.
func ParseList(r io.Reader, dir string) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		f := Fields(sc.Text())
		switch {
		case len(f) == 0:
		case f[0] == "$":
			if len(f) != 2 {
				logging.Logger().Warn("malformed directory switch", "line", line)
				continue
			}
			dir = f[1]
		case f[0] == "/":
			if len(f) < 2 {
				logging.Logger().Warn("texture line without a file", "line", line)
				continue
			}
			e := Entry{Line: line, Dir: dir, File: f[1]}
			e.Directives = parseDirectives(f[2:], line)
			entries = append(entries, e)
		case len(f) == 1:
			entries = append(entries, Entry{Line: line, Dir: dir, File: f[0]})
		default:
			logging.Logger().Warn("unrecognised texture line", "line", line, "text", sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read texture list: %w", err)
	}
	return entries, nil
}

func parseDirectives(f []string, line int) []Directive {
	var out []Directive
	for i := 0; i < len(f); i++ {
		n, ok := directiveArity[f[i]]
		if !ok {
			logging.Logger().Warn("unknown texture directive", "line", line, "directive", f[i])
			continue
		}
		if i+n >= len(f) {
			logging.Logger().Warn("texture directive is missing arguments", "line", line, "directive", f[i])
			return out
		}
		out = append(out, Directive{Name: f[i], Args: f[i+1 : i+1+n]})
		i += n
	}
	return out
}
