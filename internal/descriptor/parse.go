// Package descriptor reads the block descriptor list, decodes each line into
// a block variant and lays the variants out as atlas slots.
//
// A descriptor line is "<id> <KIND> <fields...>". Layout walks the
// variants once, in list order, and produces a Plan: the (id, state) to
// slot table plus one painter per slot.
package descriptor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blockatlas/internal/logging"
)

// Descriptor is one line of the descriptor list.
type Descriptor struct {
	Line   int
	ID     int
	Kind   string
	Fields []string // every field of the line, the id and kind included
}

// Size is the number of fields on the line.
func (d Descriptor) Size() int { return len(d.Fields) }

// Field returns field i, or "" past the end of the line.
func (d Descriptor) Field(i int) string {
	if i < 0 || i >= len(d.Fields) {
		return ""
	}
	return d.Fields[i]
}

// List is a parsed descriptor list.
type List struct {
	Descriptors []Descriptor
	FieldCount  int // fields read across all kept lines
}

// Parse reads a descriptor list. Lines starting with '#' are comments and a
// field starting with '#' ends its line. Lines whose first field is not an
// integer are skipped.
func Parse(r io.Reader) (*List, error) {
	list := &List{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" || text[0] == '#' {
			continue
		}
		f := fields(text)
		if len(f) == 0 {
			continue
		}
		id, err := strconv.Atoi(f[0])
		if err != nil {
			logging.Logger().Debug("descriptor line without block id", "line", line, "text", text)
			continue
		}
		list.FieldCount += len(f)
		if len(f) < 2 {
			logging.Logger().Warn("descriptor line without kind", "line", line)
			continue
		}
		list.Descriptors = append(list.Descriptors, Descriptor{Line: line, ID: id, Kind: f[1], Fields: f})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read descriptor list: %w", err)
	}
	return list, nil
}

func fields(line string) []string {
	var out []string
	for _, f := range strings.Split(line, " ") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if f[0] == '#' {
			break
		}
		out = append(out, f)
	}
	return out
}
