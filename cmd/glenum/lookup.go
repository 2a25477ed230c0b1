package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/james4k/go-glenum"
	"github.com/james4k/go-glenum/internal/logger"
)

func checkTables() error {
	if !glenum.NamesEnabled {
		return errors.New("glenum was built with glenum_nonames, no names are available")
	}
	return nil
}

type filter struct {
	api, typ string
}

func (f filter) skip(m glenum.Match) bool {
	return (f.api != "" && !strings.EqualFold(f.api, m.API)) ||
		(f.typ != "" && !strings.EqualFold(f.typ, m.Type))
}

func newLookupCmd() *cobra.Command {
	var (
		f         filter
		bitfields bool
	)
	cmd := &cobra.Command{
		Use:   "lookup <value>...",
		Short: "Print the enums with the given decimal or hex values",
		Long: "Print the enums with the given values. Arguments with a 0x prefix are\n" +
			"read as hex, others as both decimal and hex.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := parseValues(args)
			if len(values) == 0 {
				return errors.Errorf("no valid values in %q", args)
			}
			look := glenum.Lookup
			if bitfields {
				look = glenum.LookupBitfield
			}
			return printMatches(cmd.OutOrStdout(), f, values, look)
		},
	}
	cmd.Flags().StringVar(&f.api, "api", "", "only show enums of the given API")
	cmd.Flags().StringVar(&f.typ, "type", "", "only show enums of the given type")
	cmd.Flags().BoolVarP(&bitfields, "bitfield", "b", false, "expand the values as or'ed bitfields")
	return cmd
}

// parseValues reads each argument as hex when prefixed with 0x and as both
// decimal and hex otherwise. Values that do not fit an enum are dropped.
func parseValues(args []string) []glenum.Enum {
	var out []glenum.Enum
	add := func(s string, base int) {
		v, err := strconv.ParseUint(s, base, 32)
		if err != nil {
			logger.L().Debug("skipping", "arg", s, "base", base, "err", err)
			return
		}
		out = append(out, glenum.Enum(v))
	}
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if hex, ok := strings.CutPrefix(arg, "0x"); ok {
			add(hex, 16)
			continue
		}
		add(arg, 10)
		add(arg, 16)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func printMatches(w io.Writer, f filter, values []glenum.Enum, look func(glenum.Enum) []glenum.Match) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	n := 0
	for _, v := range values {
		for _, m := range look(v) {
			if f.skip(m) {
				continue
			}
			fmt.Fprintf(tw, "%d\t0x%04X\t%s\t%s\t%s\n", v, v, m.API, m.Type, m.FullName())
			n++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	logger.L().Debug("lookup done", "values", len(values), "matches", n)
	return nil
}

func newNameCmd() *cobra.Command {
	var f filter
	cmd := &cobra.Command{
		Use:   "name <CONSTANT>...",
		Short: "Print the values of the named constants",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			var missing []string
			for _, name := range args {
				found := false
				for _, m := range glenum.LookupName(name) {
					if f.skip(m) {
						continue
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t0x%04X\t%d\n", m.FullName(), m.API, m.Type, m.Value, m.Value)
					found = true
				}
				if !found {
					missing = append(missing, name)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(missing) > 0 {
				return errors.Errorf("unknown constants: %s", strings.Join(missing, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&f.api, "api", "", "only show enums of the given API")
	cmd.Flags().StringVar(&f.typ, "type", "", "only show enums of the given type")
	return cmd
}

func newTypesCmd() *cobra.Command {
	var api string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the enum types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, info := range glenum.Types() {
				if api != "" && !strings.EqualFold(api, info.API) {
					continue
				}
				kind := "enum"
				if info.Bitfield {
					kind = "bitfield"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", info.API, info.Type, kind, len(info.Entries))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&api, "api", "", "only list types of the given API")
	return cmd
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range <api> <Type>",
		Short: "Print every constant of an enum type in table order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := glenum.LookupType(args[0], args[1])
			if !ok {
				return errors.Errorf("unknown type %s.%s, see glenum types", args[0], args[1])
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range info.Entries {
				fmt.Fprintf(tw, "%s%s\t0x%04X\n", info.Prefix, e.Name, e.Value)
			}
			return tw.Flush()
		},
	}
}
