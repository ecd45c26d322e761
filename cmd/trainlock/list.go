package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trainlock/internal/calendar"
	"trainlock/internal/models"
)

var (
	listWeek string
	listAll  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Long: `List prints the plan one session per line. By default only upcoming and
unfinished sessions are shown; --all includes everything, --week narrows to a
single ISO week (e.g. 2025-W14).`,
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

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTYPE\tTARGET\tFOCUS\tSTATUS")
		shown := 0
		for _, s := range sessions {
			if listWeek != "" && sessionWeek(s) != listWeek {
				continue
			}
			if !listAll && (s.Completed || !s.Active) {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				shortID(s.ID), s.Date, s.PlannedType, target(s), s.Focus, status(s))
			shown++
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if shown == 0 {
			fmt.Println("Nothing to show. Run 'trainlock generate' or try --all.")
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listWeek, "week", "", "Only show one ISO week (e.g. 2025-W14)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include completed and inactive sessions")
	rootCmd.AddCommand(listCmd)
}

func sessionWeek(s models.Session) string {
	t, err := calendar.Parse(s.Date)
	if err != nil {
		return ""
	}
	return calendar.ISOWeekKey(t)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func target(s models.Session) string {
	switch {
	case s.PlannedMinutes != nil && s.PlannedKm != nil:
		return fmt.Sprintf("%d min / %.1f km", *s.PlannedMinutes, *s.PlannedKm)
	case s.PlannedMinutes != nil:
		return fmt.Sprintf("%d min", *s.PlannedMinutes)
	case s.PlannedKm != nil:
		return fmt.Sprintf("%.1f km", *s.PlannedKm)
	}
	return "-"
}

func status(s models.Session) string {
	switch {
	case !s.Active:
		return "inactive"
	case s.Completed:
		return "done"
	}
	return "open"
}
