// Package table reads the text tables the enum packages are generated
// from.
//
// A table describes one enum type:
//
//	# comment
//	@type BufferTarget
//	@doc BufferTarget selects the binding point of a buffer object.
//	@bitfield
//	ARRAY_BUFFER  0x8892  Array
//
// Constant names are written without the API prefix. Values are hex with a
// 0x prefix or decimal. The optional third column is the Go member suffix;
// when absent it is derived from the constant name.
package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Entry struct {
	Name   string
	Value  uint32
	Member string
	Line   int
}

type Table struct {
	File     string
	Type     string
	Doc      string
	Bitfield bool
	Entries  []Entry
}

// ParseError reports a malformed table line.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Parse reads one table. file is only used in error messages.
func Parse(file string, r io.Reader) (*Table, error) {
	t := &Table{File: file}
	seen := map[string]int{}
	fail := func(line int, format string, args ...interface{}) (*Table, error) {
		return nil, &ParseError{File: file, Line: line, Msg: fmt.Sprintf(format, args...)}
	}

	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.HasPrefix(text, "@") {
			directive, arg, _ := strings.Cut(text[1:], " ")
			arg = strings.TrimSpace(arg)
			switch directive {
			case "type":
				if t.Type != "" {
					return fail(line, "duplicate @type")
				}
				if !isIdent(arg) {
					return fail(line, "invalid type name %q", arg)
				}
				t.Type = arg
			case "doc":
				if t.Doc != "" {
					t.Doc += "\n"
				}
				t.Doc += arg
			case "bitfield":
				t.Bitfield = true
			default:
				return fail(line, "unknown directive @%s", directive)
			}
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return fail(line, "expected NAME VALUE [Member], got %q", text)
		}
		if t.Type == "" {
			return fail(line, "entry before @type")
		}
		name := fields[0]
		if !isConstName(name) {
			return fail(line, "invalid constant name %q", name)
		}
		if prev, dup := seen[name]; dup {
			return fail(line, "duplicate constant %s (first on line %d)", name, prev)
		}
		seen[name] = line
		value, err := parseValue(fields[1])
		if err != nil {
			return fail(line, "bad value for %s: %v", name, err)
		}
		e := Entry{Name: name, Value: value, Line: line}
		if len(fields) == 3 {
			if !isIdentPart(fields[2]) {
				return fail(line, "invalid member name %q", fields[2])
			}
			e.Member = fields[2]
		}
		t.Entries = append(t.Entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", file)
	}
	if t.Type == "" {
		return fail(line, "missing @type")
	}
	if len(t.Entries) == 0 {
		return fail(line, "table %s has no entries", t.Type)
	}
	return t, nil
}

// ParseFile parses the table stored at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening table")
	}
	defer f.Close()
	return Parse(path, f)
}

// LoadDir parses every .txt table in dir, sorted by type name.
func LoadDir(dir string) ([]*Table, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	if len(paths) == 0 {
		return nil, errors.Errorf("no tables in %s", dir)
	}
	tables := make([]*Table, 0, len(paths))
	for _, p := range paths {
		t, err := ParseFile(p)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Type < tables[j].Type })
	return tables, nil
}

// Unique returns the entries with distinct values, keeping the first name
// listed for each value.
func (t *Table) Unique() []Entry {
	seen := map[uint32]bool{}
	out := make([]Entry, 0, len(t.Entries))
	for _, e := range t.Entries {
		if seen[e.Value] {
			continue
		}
		seen[e.Value] = true
		out = append(out, e)
	}
	return out
}

func parseValue(s string) (uint32, error) {
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, errors.Cause(err)
	}
	return uint32(v), nil
}

func isConstName(s string) bool {
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_') {
			return false
		}
	}
	return true
}

func isIdent(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z' && isIdentPart(s)
}

func isIdentPart(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
