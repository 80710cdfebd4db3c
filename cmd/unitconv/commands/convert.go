package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/page"
	"github.com/goliatone/go-unitconv/pkg/prompt"
)

type conversionOutput struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Result   float64 `json:"result"`
}

func convertCmd(a *app) *cobra.Command {
	var (
		interactive bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "convert [category] [value] [from] [to]",
		Short: "Convert a value between two units",
		Example: `  unitconv convert weight 10 kg lb
  unitconv convert temperature 100 celsius fahrenheit --json
  unitconv convert length -i`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 4 {
				return fmt.Errorf("accepts at most 4 args, received %d", len(args))
			}
			if !interactive && len(args) != 4 {
				return fmt.Errorf("expected category, value, from and to (or -i to be prompted), received %d args", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, valueSet, err := requestFromArgs(args)
			if err != nil {
				return err
			}

			if interactive {
				missing := prompt.MissingFrom(req, valueSet)
				if missing != (prompt.Missing{}) {
					req, err = prompt.Complete(cmd.Context(), a.driver(), req, missing)
					if err != nil {
						return err
					}
				}
			}

			result, err := convert.ConvertRequest(req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				return enc.Encode(conversionOutput{
					Category: req.Category,
					Value:    req.Value,
					From:     req.From,
					To:       req.To,
					Result:   result,
				})
			}
			_, err = fmt.Fprintf(out, "%s %s = %s %s\n", page.FormatNumber(req.Value), req.From, page.FormatNumber(result), req.To)
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for missing arguments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// requestFromArgs maps positional args onto a request. valueSet reports
// whether the value argument was given.
func requestFromArgs(args []string) (convert.Request, bool, error) {
	var req convert.Request
	valueSet := false
	if len(args) > 0 {
		req.Category = foldName(args[0])
	}
	if len(args) > 1 {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
		if err != nil {
			return req, false, fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		req.Value = value
		valueSet = true
	}
	if len(args) > 2 {
		req.From = foldName(args[2])
	}
	if len(args) > 3 {
		req.To = foldName(args[3])
	}
	return req, valueSet, nil
}

// foldName accepts category and unit names typed in any case.
func foldName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
