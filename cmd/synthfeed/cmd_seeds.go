package main

import (
	"encoding/json"
	"fmt"

	"github.com/rpgo/synthfeed/internal/calculation"
	"github.com/rpgo/synthfeed/internal/domain"
	"github.com/spf13/cobra"
)

func newSeedsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Draw fresh, non-reproducible seeds from the configured range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			if count <= 0 {
				count = len(cfg.Charts)
			}

			r := calculation.SeedRange{Min: cfg.Generation.SeedMin, Max: cfg.Generation.SeedMax}
			seeds := make(domain.SeedSet, count).Regenerate(r.Next)

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{"seeds": seeds})
			}
			for _, s := range seeds {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().Int("count", 0, "number of seeds (default: one per chart)")
	return cmd
}
