package glenum

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// Entry is one named value of a registered type.
type Entry struct {
	Name  string
	Value Enum
}

// TypeInfo describes a registered enum type.
type TypeInfo struct {
	API      string
	Prefix   string
	Type     string
	Bitfield bool
	Entries  []Entry
}

// Match is a single lookup result. For bitfield expansions Name holds the
// or'ed member names, e.g. "COLOR_BUFFER_BIT | DEPTH_BUFFER_BIT".
type Match struct {
	API    string
	Prefix string
	Type   string
	Name   string
	Value  Enum
}

// FullName returns the name with its API prefix. Each member of a
// bitfield expansion gets the prefix.
func (m Match) FullName() string {
	parts := strings.Split(m.Name, bitSep)
	for i, p := range parts {
		parts[i] = m.Prefix + p
	}
	return strings.Join(parts, bitSep)
}

const bitSep = " | "

type typeKey struct {
	api, typ string
}

var (
	registryMu sync.RWMutex
	types      = map[typeKey]*TypeInfo{}
	byValue    = map[Enum][]Match{}
	byName     = map[string][]Match{}
)

// Register adds the entries of a generated enum type. It is called from
// the init functions of the generated name tables and is a no-op when the
// type is already registered.
func Register(info TypeInfo) {
	registryMu.Lock()
	defer registryMu.Unlock()

	k := typeKey{info.API, info.Type}
	if _, dup := types[k]; dup {
		return
	}
	stored := info
	stored.Entries = slices.Clone(info.Entries)
	types[k] = &stored
	for _, e := range info.Entries {
		m := Match{API: info.API, Prefix: info.Prefix, Type: info.Type, Name: e.Name, Value: e.Value}
		byValue[e.Value] = append(byValue[e.Value], m)
		byName[strings.ToUpper(e.Name)] = append(byName[strings.ToUpper(e.Name)], m)
	}
}

// Lookup returns every registered name for v.
func Lookup(v Enum) []Match {
	registryMu.RLock()
	out := slices.Clone(byValue[v])
	registryMu.RUnlock()
	sortMatches(out)
	return out
}

// LookupName returns the registered values named name. The match is case
// insensitive and the API prefix (GL_, EGL_) is optional.
func LookupName(name string) []Match {
	name = strings.ToUpper(strings.TrimSpace(name))

	registryMu.RLock()
	defer registryMu.RUnlock()

	var out []Match
	out = append(out, byName[name]...)
	for _, t := range types {
		if t.Prefix == "" || !strings.HasPrefix(name, t.Prefix) {
			continue
		}
		for _, m := range byName[strings.TrimPrefix(name, t.Prefix)] {
			if m.API == t.API && m.Type == t.Type {
				out = append(out, m)
			}
		}
	}
	sortMatches(out)
	return slices.Compact(out)
}

// LookupBitfield expands v as an or'ed combination of the members of each
// registered bitfield type. A type matches only if its bits cover v
// exactly. Zero never matches.
func LookupBitfield(v Enum) []Match {
	if v == 0 {
		return nil
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	var out []Match
	for _, t := range types {
		if !t.Bitfield {
			continue
		}
		var (
			names []string
			mask  Enum
		)
		for _, e := range t.Entries {
			if e.Value != 0 && v&e.Value == e.Value && mask&e.Value != e.Value {
				mask |= e.Value
				names = append(names, e.Name)
			}
		}
		if mask == v {
			out = append(out, Match{
				API:    t.API,
				Prefix: t.Prefix,
				Type:   t.Type,
				Name:   strings.Join(names, bitSep),
				Value:  v,
			})
		}
	}
	sortMatches(out)
	return out
}

// Types returns the registered types sorted by API and name.
func Types() []TypeInfo {
	registryMu.RLock()
	out := make([]TypeInfo, 0, len(types))
	for _, t := range types {
		out = append(out, *t)
	}
	registryMu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].API != out[j].API {
			return out[i].API < out[j].API
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// LookupType returns the registered type with the given API and name.
func LookupType(api, typ string) (TypeInfo, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := types[typeKey{api, typ}]
	if !ok {
		return TypeInfo{}, false
	}
	return *t, true
}

func sortMatches(m []Match) {
	sort.Slice(m, func(i, j int) bool {
		a, b := m[i], m[j]
		if a.API != b.API {
			return a.API < b.API
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Name < b.Name
	})
}
