package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"trainlock/internal/config"
	"trainlock/internal/plan"
)

var generateForce bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full training plan",
	Long: `Generate materializes the complete schedule from next Monday up to the next
August 1 and locks it in. Dates and ids never change afterwards; only progress
fields are editable. Refuses to overwrite an existing plan unless --force is
given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, logger, err := setup(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		if st.HasData(ctx) && !generateForce {
			return fmt.Errorf("a plan already exists, re-run with --force to replace it")
		}

		sessions := plan.NewGenerator().FullLockedPlan(time.Now())
		if len(sessions) == 0 {
			fmt.Println("No sessions fit before the target date; nothing generated.")
			return nil
		}
		if err := st.Save(ctx, config.SchemaVersion, sessions); err != nil {
			return err
		}

		logger.Info().Int("sessions", len(sessions)).Msg("plan generated")
		fmt.Printf("Generated %d sessions from %s to %s.\n",
			len(sessions), sessions[0].Date, sessions[len(sessions)-1].Date)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "Replace an existing plan")
	rootCmd.AddCommand(generateCmd)
}
