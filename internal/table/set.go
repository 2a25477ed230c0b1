package table

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Constant is a native constant used by at least one table of an API.
type Constant struct {
	Name  string
	Value uint32
}

// Set is the merged view of all tables of one API.
type Set struct {
	API       string
	Prefix    string
	Tables    []*Table
	Constants []Constant
}

// ConflictError reports a constant listed with different values.
type ConflictError struct {
	Name  string
	First string
	Other string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("constant %s has conflicting values: %s and %s", e.Name, e.First, e.Other)
}

// Merge combines the tables of one API. Type names must be unique and a
// constant must have the same value in every table that lists it.
func Merge(api, prefix string, tables []*Table) (*Set, error) {
	byType := map[string]*Table{}
	byName := map[string]Entry{}
	where := map[string]string{}

	for _, t := range tables {
		if prev, dup := byType[t.Type]; dup {
			return nil, errors.Errorf("type %s defined in both %s and %s", t.Type, prev.File, t.File)
		}
		byType[t.Type] = t
		for _, e := range t.Entries {
			loc := fmt.Sprintf("0x%04X (%s:%d)", e.Value, t.File, e.Line)
			if prev, ok := byName[e.Name]; ok {
				if prev.Value != e.Value {
					return nil, &ConflictError{Name: e.Name, First: where[e.Name], Other: loc}
				}
				continue
			}
			byName[e.Name] = e
			where[e.Name] = loc
		}
	}

	s := &Set{
		API:    api,
		Prefix: prefix,
		Tables: slices.Clone(tables),
	}
	sort.Slice(s.Tables, func(i, j int) bool { return s.Tables[i].Type < s.Tables[j].Type })
	for name, e := range byName {
		s.Constants = append(s.Constants, Constant{Name: name, Value: e.Value})
	}
	sort.Slice(s.Constants, func(i, j int) bool {
		a, b := s.Constants[i], s.Constants[j]
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return a.Name < b.Name
	})
	return s, nil
}
