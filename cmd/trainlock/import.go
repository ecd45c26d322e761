package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"trainlock/internal/export"
	"trainlock/internal/merge"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import a JSON export",
	Long: `Import reads a plain or encrypted JSON export and merges it into the local
plan: per record the newer edit wins, and semantic duplicates collapse to the
more complete entry. The local plan is never wholesale replaced.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, logger, err := setup(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if plain, isEncrypted, err := export.DecryptDocument(raw, ""); isEncrypted {
			pass, perr := promptPassphrase(false)
			if perr != nil {
				return perr
			}
			plain, _, err = export.DecryptDocument(raw, pass)
			if err != nil {
				return fmt.Errorf("decrypt %s: %w", args[0], err)
			}
			raw = plain
		} else if err != nil {
			return err
		}

		doc, err := export.Decode(raw, time.Now())
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		version, local, err := st.Load(ctx)
		if err != nil {
			return err
		}
		if doc.Version > version {
			version = doc.Version
		}

		result, err := merge.Reconcile(local, doc.Entries)
		if err != nil {
			return err
		}
		if err := st.Save(ctx, version, result); err != nil {
			return err
		}
		logger.Info().Int("imported", len(doc.Entries)).Int("total", len(result)).Msg("import merged")
		fmt.Printf("Imported %d sessions; plan now has %d.\n", len(doc.Entries), len(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
