package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
)

func newReplayCmd() *cobra.Command {
	var (
		pageURL string
		roster  bool
	)
	cmd := &cobra.Command{
		Use:   "replay <file>",
		Short: "Extract fields from an archived page without fetching",
		Long: `Parses a previously archived athlete profile (or, with --roster, the
athlete roster page) from disk and prints what would have been extracted.
Useful for checking selectors against snapshots after the site markup moves.`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{offlineAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open snapshot: %w", err)
			}
			defer func() { _ = f.Close() }()

			if roster {
				names, err := athlete.ParseTitleholders(f)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), map[string]any{"titleholders": names})
			}

			if pageURL == "" {
				pageURL = args[0]
			}
			profile, err := athlete.ParseProfile(f, pageURL)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile.Fighter())
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "", "original page URL recorded in the snapshot output")
	cmd.Flags().BoolVar(&roster, "roster", false, "treat the file as the athlete roster page")
	return cmd
}
