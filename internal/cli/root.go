// Package cli implements the passgen command line.
package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/config"
	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/service"
	"github.com/vaultpass/passforge/internal/strength"
)

// Options overrides dependencies that are otherwise built from the environment.
type Options struct {
	Config  *config.Config
	Source  crypto.RandomSource
	Checker breach.Checker
}

type app struct {
	opts Options

	cfg       config.Config
	lists     *crypto.WordLists
	generator *crypto.Generator
	estimator *strength.Estimator
	checker   breach.Checker
	service   *service.GeneratorService
}

// NewRootCmd builds the passgen command tree.
func NewRootCmd(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "passgen",
		Short: "passgen - generate passwords and passphrases",
		Long: `passgen generates random passwords and word-based passphrases, estimates
their strength and can check them against the Pwned Passwords corpus
without ever sending the full credential.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	root.AddCommand(
		newGenerateCmd(a),
		newInteractiveCmd(a),
		newHashPassphraseCmd(),
		newPresetsCmd(),
		newWordListsCmd(a),
	)
	return root
}

func (a *app) init() error {
	if a.opts.Config != nil {
		a.cfg = *a.opts.Config
	} else {
		a.cfg = config.Load()
	}

	a.lists = crypto.NewWordLists()
	if a.cfg.WordListsFile != "" {
		f, err := os.Open(a.cfg.WordListsFile)
		if err != nil {
			return fmt.Errorf("opening word lists: %w", err)
		}
		defer f.Close()
		if err := a.lists.LoadYAML(f); err != nil {
			return err
		}
	}

	src := a.opts.Source
	if src == nil {
		src = crypto.SecureSource()
	}
	a.checker = a.opts.Checker
	if a.checker == nil {
		a.checker = breach.NewClient(a.cfg.BreachAPIURL,
			breach.WithHTTPClient(&http.Client{Timeout: a.cfg.BreachTimeout}),
			breach.WithRateLimit(a.cfg.BreachRPS, int(a.cfg.BreachRPS)),
		)
	}

	rates := strength.Rates{Online: a.cfg.OnlineGuessRate, Offline: a.cfg.OfflineGuessRate}
	if rates.Online <= 0 || rates.Offline <= 0 {
		rates = strength.DefaultRates()
	}

	a.generator = crypto.NewGenerator(src, a.lists)
	a.estimator = strength.NewEstimator(rates, a.lists)
	a.service = service.NewGeneratorService(a.generator, a.estimator, a.checker)
	return nil
}

func (a *app) debounce() time.Duration {
	if a.cfg.BreachDebounce > 0 {
		return a.cfg.BreachDebounce
	}
	return breach.DefaultDebounce
}
