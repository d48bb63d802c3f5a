package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JakeFAU/ufc-athletes/internal/athlete"
)

func newChampionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "champions [division]",
		Short: "Resolve current titleholders",
		Long: `Reads the titleholders block of the athlete roster, fetches each
champion's profile and prints the champion of every division. Pass a division
slug (for example "womens-strawweight" or "light-heavyweight") to resolve a
single division. Vacant divisions are printed without a fighter.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				d, ok := athlete.DivisionBySlug(args[0])
				if !ok {
					return fmt.Errorf("unknown division %q", args[0])
				}
				champ, err := appInstance.Service().ScrapeChampion(cmd.Context(), d)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), champ)
			}
			champs, err := appInstance.Service().ScrapeChampions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), champs)
		},
	}
}
