package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trainlock/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show weekly progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, _, err := setup(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		_, sessions, err := st.Load(ctx)
		if err != nil {
			return err
		}

		weeks := stats.Weekly(sessions)
		if len(weeks) == 0 {
			fmt.Println("No active sessions. Run 'trainlock generate' first.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WEEK\tDONE\tPLANNED\tMINUTES\tKM")
		for _, week := range weeks {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%.1f\n",
				week.Week, week.Completed, week.Planned, week.ActualMinutes, week.ActualKm)
		}
		total := stats.Total(weeks)
		fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%.1f\n",
			total.Completed, total.Planned, total.ActualMinutes, total.ActualKm)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
