package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qolzam/backoffice/internal/search"
)

func newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search",
		Short: "Inspect the factory search compiler",
	}
	c.AddCommand(newSearchCompileCmd(), newSearchFieldsCmd())
	return c
}

func newSearchCompileCmd() *cobra.Command {
	var (
		match  string
		fields []string
	)

	c := &cobra.Command{
		Use:   "compile <term>",
		Short: "Print the WHERE clause and parameters produced for a term",
		Example: `  backofficectl search compile 'john smith'
  backofficectl search compile '"Acme Mills"' --match exact --fields factories_name`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fields) == 0 {
				fields = search.DefaultFactoryFields
			}
			for _, f := range fields {
				if _, ok := search.FactoryVocabulary.Lookup(f); !ok {
					return fmt.Errorf("unknown field %q (see 'backofficectl search fields')", f)
				}
			}

			filter := search.FactoryVocabulary.Compile(args[0], search.MatchType(match), fields)
			out := cmd.OutOrStdout()
			if filter.IsEmpty() {
				fmt.Fprintln(out, "no filter: every row matches")
				return nil
			}

			fmt.Fprintf(out, "WHERE %s\n\n", filter.Where)

			names := make([]string, 0, len(filter.Params))
			for name := range filter.Params {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool {
				return paramIndex(names[i]) < paramIndex(names[j])
			})

			table := newTable(out, "Param", "Type", "Value")
			for _, name := range names {
				value := filter.Params[name]
				table.Append([]string{":" + name, fmt.Sprintf("%T", value), fmt.Sprint(value)})
			}
			table.Render()
			return nil
		},
	}

	c.Flags().StringVar(&match, "match", string(search.MatchPartial), "match type: partial, exact or phrase")
	c.Flags().StringSliceVar(&fields, "fields", nil, "comma separated fields to search, all when empty")
	return c
}

func newSearchFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the searchable factory fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := newTable(cmd.OutOrStdout(), "Field", "Numeric", "Expressions")
			for _, spec := range search.FactoryVocabulary {
				table.Append([]string{string(spec.Field), fmt.Sprint(spec.Numeric), strings.Join(spec.Expressions, " | ")})
			}
			table.Render()
			return nil
		},
	}
}

// paramIndex orders s0, s1, ..., s10 numerically.
func paramIndex(name string) int {
	var n int
	_, _ = fmt.Sscanf(name, "s%d", &n)
	return n
}
