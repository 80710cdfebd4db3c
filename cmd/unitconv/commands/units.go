package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-unitconv/pkg/convert"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "units [category]",
		Short:     "List categories and their units",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := convert.Categories()
			if len(args) == 1 {
				category, err := convert.ParseCategory(foldName(args[0]))
				if err != nil {
					return err
				}
				categories = []convert.Category{category}
			}
			for _, category := range categories {
				if err := printUnits(cmd.OutOrStdout(), category); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

func printUnits(w io.Writer, category convert.Category) error {
	units, err := convert.Units(category)
	if err != nil {
		return err
	}
	from, to := convert.DefaultPair(category)
	if _, err := fmt.Fprintf(w, "%s (default %s -> %s)\n", category, from, to); err != nil {
		return err
	}
	for _, unit := range units {
		if _, err := fmt.Fprintf(w, "  %-12s %s\n", unit.Name, unit.Label); err != nil {
			return err
		}
	}
	return nil
}

func categoryNames() []string {
	categories := convert.Categories()
	out := make([]string, len(categories))
	for i, category := range categories {
		out[i] = string(category)
	}
	return out
}
