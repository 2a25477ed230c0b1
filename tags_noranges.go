//go:build glenum_noranges

package glenum

// RangesEnabled reports whether the generated range tables are compiled in.
const RangesEnabled = false
