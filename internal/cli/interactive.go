package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/service"
)

const interactiveHelp = "[enter] regenerate  [b] toggle breach check  [q] quit\n"

func newInteractiveCmd(a *app) *cobra.Command {
	var (
		flags policyFlags
		check bool
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Regenerate credentials on demand with live breach status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := service.ResolvePolicy(flags.request(cmd), a.lists)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			monitor := breach.NewMonitor(a.checker, a.debounce(), p.breachStatus)
			defer monitor.Close()
			monitor.SetEnabled(check)

			generate := func() error {
				cred, err := a.generator.Generate(policy)
				if err != nil {
					return err
				}
				p.report(a.service.Describe(policy, cred))
				monitor.Submit(cred.Value)
				return nil
			}

			p.printf(interactiveHelp)
			if err := generate(); err != nil {
				return err
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
				case "":
					if err := generate(); err != nil {
						return err
					}
				case "q", "quit", "exit":
					return nil
				case "b":
					check = !check
					p.printf("breach check %s\n", onOff(check))
					monitor.SetEnabled(check)
				default:
					p.printf(interactiveHelp)
				}
			}
			return scanner.Err()
		},
	}

	addPolicyFlags(cmd, &flags)
	cmd.Flags().BoolVar(&check, "breach", false, "check each credential against the breach corpus")
	return cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
