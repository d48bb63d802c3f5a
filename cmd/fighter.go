package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFighterCmd() *cobra.Command {
	var fields []string
	cmd := &cobra.Command{
		Use:   "fighter <name...>",
		Short: "Scrape a single athlete profile",
		Long: `Fetches https://www.ufc.com/athlete/<slug> for the given name, records
the scrape and prints the fighter snapshot as JSON. With --field only the
named fields are extracted and nothing is recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")

			if len(fields) == 0 {
				f, err := appInstance.Service().ScrapeFighter(cmd.Context(), name)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), f)
			}

			profile, err := appInstance.Client().FindFighter(cmd.Context(), name)
			if err != nil {
				return err
			}
			out := make(map[string]any, len(fields))
			for _, field := range fields {
				v, err := profile.Value(field)
				if err != nil {
					return fmt.Errorf("%s: %w", profile, err)
				}
				out[field] = v
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringSliceVar(&fields, "field", nil, "extract only these fields (repeatable)")
	return cmd
}
