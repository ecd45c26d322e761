package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the local plan with the configured gist",
	Long: `Sync pulls the remote document, merges it with the local plan (newer edits
win per record), saves the result, and pushes it back. When the remote side is
unreachable the local plan is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, st, logger, err := setup(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := newSyncService(cfg, st, logger)
		if svc == nil {
			return fmt.Errorf("no gist configured, set gist.id in the config file or TRAINLOCK_GIST_ID")
		}

		res, err := svc.Reconcile(ctx)
		if err != nil {
			return err
		}
		switch {
		case !res.Pulled:
			fmt.Println("Remote unavailable; local plan unchanged.")
		case !res.Pushed:
			fmt.Printf("Merged %d sessions (%d local, %d remote); push failed, remote copy is stale.\n",
				res.Merged, res.Local, res.Remote)
		default:
			fmt.Printf("Synced %d sessions (%d local, %d remote).\n", res.Merged, res.Local, res.Remote)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
