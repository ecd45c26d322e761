package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"trainlock/internal/store"
	"trainlock/internal/util"
)

var doneUndo bool

var doneCmd = &cobra.Command{
	Use:   "done ID|DATE",
	Short: "Mark a session as completed",
	Example: `  trainlock done 2025-04-14
  trainlock done 3f2a91c2 --undo`,
	Args: cobra.ExactArgs(1),
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
		s, err := findSession(sessions, args[0])
		if err != nil {
			return err
		}
		if err := st.SetCompleted(ctx, s.ID, !doneUndo); err != nil {
			return err
		}
		verb := "completed"
		if doneUndo {
			verb = "reopened"
		}
		fmt.Printf("Session %s (%s %s) %s.\n", shortID(s.ID), s.Date, s.PlannedType, verb)
		return nil
	},
}

var logMinutes, logRPE int
var logKm float64
var logNotes string

var logCmd = &cobra.Command{
	Use:   "log ID|DATE",
	Short: "Record the actual outcome of a session",
	Example: `  trainlock log 2025-04-14 --minutes 32 --km 6.4 --rpe 7
  trainlock log 3f2a91c2 --notes "felt strong"`,
	Args: cobra.ExactArgs(1),
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
		s, err := findSession(sessions, args[0])
		if err != nil {
			return err
		}

		update, err := actualsFromFlags(cmd)
		if err != nil {
			return err
		}
		if err := st.SetActuals(ctx, s.ID, update); err != nil {
			return err
		}
		fmt.Printf("Logged session %s (%s %s).\n", shortID(s.ID), s.Date, s.PlannedType)
		return nil
	},
}

// actualsFromFlags builds the update from the flags that were actually set,
// so an unset flag never clears a previously recorded value.
func actualsFromFlags(cmd *cobra.Command) (store.ActualsUpdate, error) {
	update := store.ActualsUpdate{Notes: logNotes}
	if cmd.Flags().Changed("minutes") {
		if logMinutes < 0 {
			return update, fmt.Errorf("minutes must be non-negative")
		}
		update.Minutes = util.Ptr(logMinutes)
	}
	if cmd.Flags().Changed("km") {
		if logKm < 0 {
			return update, fmt.Errorf("km must be non-negative")
		}
		update.Km = util.Ptr(logKm)
	}
	if cmd.Flags().Changed("rpe") {
		if logRPE < 1 || logRPE > 10 {
			return update, fmt.Errorf("rpe must be between 1 and 10")
		}
		update.RPE = util.Ptr(logRPE)
	}
	return update, nil
}

var deactivateRestore bool

var deactivateCmd = &cobra.Command{
	Use:   "deactivate ID|DATE",
	Short: "Exclude a session from stats and sync views",
	Long: `Deactivate soft-hides a session. The record is kept (dates are locked), it
just stops counting. --restore brings it back.`,
	Args: cobra.ExactArgs(1),
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
		s, err := findSession(sessions, args[0])
		if err != nil {
			return err
		}
		if err := st.SetActive(ctx, s.ID, deactivateRestore); err != nil {
			return err
		}
		verb := "deactivated"
		if deactivateRestore {
			verb = "restored"
		}
		fmt.Printf("Session %s (%s %s) %s.\n", shortID(s.ID), s.Date, s.PlannedType, verb)
		return nil
	},
}

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Mark the session as not completed")

	logCmd.Flags().IntVar(&logMinutes, "minutes", 0, "Actual duration in minutes")
	logCmd.Flags().Float64Var(&logKm, "km", 0, "Actual distance in km")
	logCmd.Flags().IntVar(&logRPE, "rpe", 0, "Perceived exertion (1-10)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Free-form notes")

	deactivateCmd.Flags().BoolVar(&deactivateRestore, "restore", false, "Reactivate the session")

	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deactivateCmd)
}
