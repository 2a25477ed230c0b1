//go:build !glenum_nonames

package glenum

// NamesEnabled reports whether the generated name tables are compiled in.
const NamesEnabled = true
