package cli

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/export"
	"github.com/vaultpass/passforge/internal/model"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		flags policyFlags
		count int
		asCSV bool
		check bool
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more credentials",
		Example: `  passgen generate
  passgen generate --length 24 --symbols=false
  passgen generate --mode readable --words 5 --separator none
  passgen generate --preset nist-strong --count 20 --csv > passwords.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := flags.request(cmd)
			out := cmd.OutOrStdout()

			if count > 1 || asCSV {
				resp, err := a.service.Bulk(model.BulkRequest{GenerateRequest: req, Count: count})
				if err != nil {
					return err
				}
				if asCSV {
					return export.WriteCSV(out, resp.Passwords)
				}
				p := newPrinter(out)
				for _, pw := range resp.Passwords {
					p.printf("%s\n", pw)
				}
				return nil
			}

			req.BreachCheck = check
			resp, err := a.service.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if quiet {
				newPrinter(out).printf("%s\n", resp.Password)
				return nil
			}
			newPrinter(out).report(resp)
			return nil
		},
	}

	addPolicyFlags(cmd, &flags)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of credentials (1-500)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write an index,password CSV")
	cmd.Flags().BoolVar(&check, "breach", false, "check the credential against the breach corpus (k-anonymity)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the credential")
	return cmd
}
