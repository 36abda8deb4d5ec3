package crypto

import (
	"fmt"
	"slices"

	"github.com/vaultpass/passforge/internal/model"
)

const (
	MinLength = 4
	MaxLength = 128

	MinWords = 2
	MaxWords = 8
)

var (
	ErrUnknownMode         = fmt.Errorf("%w: mode must be %q or %q", ErrPolicy, model.ModeRandom, model.ModeReadable)
	ErrLengthOutOfRange    = fmt.Errorf("%w: password length must be between %d and %d", ErrPolicy, MinLength, MaxLength)
	ErrWordCountOutOfRange = fmt.Errorf("%w: word count must be between %d and %d", ErrPolicy, MinWords, MaxWords)
	ErrUnknownSeparator    = fmt.Errorf("%w: unknown separator", ErrPolicy)
	ErrUnknownWordList     = fmt.Errorf("%w: unknown word list", ErrPolicy)
	ErrUnknownPreset       = fmt.Errorf("%w: unknown preset", ErrPolicy)
)

// ValidatePolicy checks the fields relevant to the policy's mode.
// lists is only consulted in readable mode.
func ValidatePolicy(p model.Policy, lists *WordLists) error {
	switch p.Mode {
	case model.ModeRandom:
		if p.Length < MinLength || p.Length > MaxLength {
			return ErrLengthOutOfRange
		}
		if !p.Lowercase && !p.Uppercase && !p.Digits && !p.Symbols {
			return ErrNoCharacterTypes
		}
		return nil
	case model.ModeReadable:
		if p.WordCount < MinWords || p.WordCount > MaxWords {
			return ErrWordCountOutOfRange
		}
		if !slices.Contains(model.Separators, p.Separator) {
			return ErrUnknownSeparator
		}
		if lists == nil {
			return ErrUnknownWordList
		}
		if _, ok := lists.Get(p.WordListID); !ok {
			return ErrUnknownWordList
		}
		return nil
	default:
		return ErrUnknownMode
	}
}

// Compliance guidance reported by ComplianceIssues.
const (
	IssueShortLength    = "Length under 12"
	IssueFewClasses     = "Use at least 3 character types"
	IssueNoCoverage     = "Enable guaranteed coverage"
	IssueFewWords       = "Use ≥ 4 words"
	IssueNoNumberSuffix = "Add a number to increase entropy"
)

// ComplianceIssues lists the ways p falls short of the recommended baseline.
// It never fails; an empty result means p is compliant.
func ComplianceIssues(p model.Policy) []string {
	issues := []string{}
	if p.Mode == model.ModeReadable {
		if p.WordCount < 4 {
			issues = append(issues, IssueFewWords)
		}
		if !p.AppendNumber {
			issues = append(issues, IssueNoNumberSuffix)
		}
		return issues
	}

	if p.Length < 12 {
		issues = append(issues, IssueShortLength)
	}
	classes := 0
	for _, on := range []bool{p.Lowercase, p.Uppercase, p.Digits, p.Symbols} {
		if on {
			classes++
		}
	}
	if classes < 3 {
		issues = append(issues, IssueFewClasses)
	}
	if !p.RequireCoverage {
		issues = append(issues, IssueNoCoverage)
	}
	return issues
}

// Preset is a named adjustment applied on top of an existing policy.
type Preset struct {
	Key         string
	Description string
	apply       func(p *model.Policy)
}

// Presets lists the built-in presets in display order.
var Presets = []Preset{
	{
		Key:         "custom",
		Description: "Keep the current options",
		apply:       func(*model.Policy) {},
	},
	{
		Key:         "nist-strong",
		Description: "Random, at least 16 characters, every class, coverage enforced",
		apply: func(p *model.Policy) {
			p.Mode = model.ModeRandom
			p.Length = max(p.Length, 16)
			p.Lowercase, p.Uppercase, p.Digits, p.Symbols = true, true, true, true
			p.ExcludeSimilar = false
			p.RequireCoverage = true
		},
	},
	{
		Key:         "no-symbols-16",
		Description: "Random, at least 16 characters, letters and digits only",
		apply: func(p *model.Policy) {
			p.Mode = model.ModeRandom
			p.Length = max(p.Length, 16)
			p.Lowercase, p.Uppercase, p.Digits = true, true, true
			p.Symbols = false
			p.RequireCoverage = true
		},
	},
	{
		Key:         "passphrase-4w",
		Description: "Passphrase of at least 4 capitalized words plus a number",
		apply: func(p *model.Policy) {
			p.Mode = model.ModeReadable
			p.WordCount = max(p.WordCount, 4)
			p.Separator = model.SeparatorHyphen
			p.CapitalizeWords = true
			p.AppendNumber = true
		},
	},
}

// ApplyPreset returns a copy of p adjusted by the named preset.
func ApplyPreset(p model.Policy, key string) (model.Policy, error) {
	for _, preset := range Presets {
		if preset.Key == key {
			preset.apply(&p)
			return p, nil
		}
	}
	return p, ErrUnknownPreset
}
