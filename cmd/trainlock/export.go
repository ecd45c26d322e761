package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"trainlock/internal/config"
	"trainlock/internal/export"
	"trainlock/internal/models"
	"trainlock/internal/util"
)

var (
	exportOut     string
	exportEncrypt bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the plan to a file",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the plan as CSV",
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
		out, err := openOutput(exportOut, "trainlock.csv")
		if err != nil {
			return err
		}
		defer out.Close()
		if err := export.WriteCSV(out, sessions); err != nil {
			return err
		}
		fmt.Printf("Exported %d sessions to %s.\n", len(sessions), out.Name())
		return nil
	},
}

var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export the plan as a JSON document",
	Long: `Export json writes the versioned document used by sync and import. With
--encrypt the file is sealed with a passphrase and can only be imported with
the same passphrase.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		_, st, _, err := setup(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		version, sessions, err := st.Load(ctx)
		if err != nil {
			return err
		}
		if version == 0 {
			version = config.SchemaVersion
		}
		raw, err := export.EncodeDocument(models.Document{Version: version, Entries: sessions})
		if err != nil {
			return err
		}

		if exportEncrypt {
			pass, err := promptPassphrase(true)
			if err != nil {
				return err
			}
			raw, err = export.EncryptDocument(raw, pass)
			if err != nil {
				return err
			}
		}

		out, err := openOutput(exportOut, "trainlock.json")
		if err != nil {
			return err
		}
		defer out.Close()
		if _, err := out.Write(raw); err != nil {
			return err
		}
		fmt.Printf("Exported %d sessions to %s.\n", len(sessions), out.Name())
		return nil
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export the plan as a printable PDF checklist",
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
		path := exportOut
		if path == "" {
			path = "trainlock.pdf"
		}
		if err := export.WritePDF(path, sessions); err != nil {
			return err
		}
		fmt.Printf("Exported %d sessions to %s.\n", len(sessions), path)
		return nil
	},
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "output", "o", "", "Output file (default depends on format)")
	exportJSONCmd.Flags().BoolVar(&exportEncrypt, "encrypt", false, "Encrypt the export with a passphrase")

	exportCmd.AddCommand(exportCSVCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}

func openOutput(path, fallback string) (*os.File, error) {
	if path == "" {
		path = fallback
	}
	return os.Create(path)
}

// promptPassphrase reads a passphrase from the terminal without echo. When
// confirm is set the passphrase is validated and asked for twice.
func promptPassphrase(confirm bool) (string, error) {
	fmt.Fprint(os.Stderr, "Passphrase: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	pass := string(raw)
	if !confirm {
		return pass, nil
	}
	if err := util.ValidatePassphrase(pass); err != nil {
		return "", err
	}
	fmt.Fprint(os.Stderr, "Repeat passphrase: ")
	again, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	if pass != string(again) {
		return "", fmt.Errorf("passphrases do not match")
	}
	return pass, nil
}
