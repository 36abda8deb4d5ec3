package cli

import (
	"github.com/spf13/cobra"

	"github.com/vaultpass/passforge/internal/model"
)

// policyFlags binds the policy options shared by generate and interactive.
// Only flags set on the command line override the defaults.
type policyFlags struct {
	preset string
	mode   string
	length int

	lowercase, uppercase, digits, symbols bool
	excludeSimilar, coverage              bool

	wordList  string
	words     int
	separator string
	capital   bool
	number    bool
}

func addPolicyFlags(cmd *cobra.Command, f *policyFlags) {
	def := model.DefaultPolicy()
	fs := cmd.Flags()

	fs.StringVar(&f.preset, "preset", "", "apply a preset (custom, nist-strong, no-symbols-16, passphrase-4w)")
	fs.StringVarP(&f.mode, "mode", "m", string(def.Mode), "random or readable")
	fs.IntVarP(&f.length, "length", "l", def.Length, "password length (random mode)")

	fs.BoolVar(&f.lowercase, "lower", def.Lowercase, "include lowercase letters")
	fs.BoolVar(&f.uppercase, "upper", def.Uppercase, "include uppercase letters")
	fs.BoolVar(&f.digits, "digits", def.Digits, "include digits")
	fs.BoolVar(&f.symbols, "symbols", def.Symbols, "include symbols")
	fs.BoolVar(&f.excludeSimilar, "exclude-similar", def.ExcludeSimilar, "leave out look-alike characters (il1Lo0O)")
	fs.BoolVar(&f.coverage, "coverage", def.RequireCoverage, "guarantee one character of every selected class")

	fs.StringVar(&f.wordList, "word-list", def.WordListID, "word list id (readable mode)")
	fs.IntVarP(&f.words, "words", "w", def.WordCount, "number of words (readable mode)")
	fs.StringVar(&f.separator, "separator", string(def.Separator), `word separator: "-", "_", ".", " " or "none"`)
	fs.BoolVar(&f.capital, "capitalize", def.CapitalizeWords, "capitalize each word")
	fs.BoolVar(&f.number, "number", def.AppendNumber, "append a number")
}

func (f *policyFlags) request(cmd *cobra.Command) model.GenerateRequest {
	changed := cmd.Flags().Changed
	req := model.GenerateRequest{Preset: f.preset}

	if changed("mode") {
		req.Mode = model.Mode(f.mode)
	}
	if changed("length") {
		req.Length = f.length
	}
	req.Lowercase = boolIfChanged(changed("lower"), f.lowercase)
	req.Uppercase = boolIfChanged(changed("upper"), f.uppercase)
	req.Numbers = boolIfChanged(changed("digits"), f.digits)
	req.Symbols = boolIfChanged(changed("symbols"), f.symbols)
	req.ExcludeSimilar = boolIfChanged(changed("exclude-similar"), f.excludeSimilar)
	req.RequireCoverage = boolIfChanged(changed("coverage"), f.coverage)

	if changed("word-list") {
		req.WordList = f.wordList
	}
	if changed("words") {
		req.WordCount = f.words
	}
	if changed("separator") {
		sep := model.Separator(f.separator)
		req.Separator = &sep
	}
	req.Capitalize = boolIfChanged(changed("capitalize"), f.capital)
	req.AppendNumber = boolIfChanged(changed("number"), f.number)
	return req
}

func boolIfChanged(changed, v bool) *bool {
	if !changed {
		return nil
	}
	return &v
}
