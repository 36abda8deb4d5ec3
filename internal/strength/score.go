package strength

import (
	"unicode/utf8"

	"github.com/vaultpass/passforge/internal/model"
)

// Level is the label bucket of a rule score.
type Level int

const (
	LevelNone Level = iota
	LevelWeak
	LevelMedium
	LevelStrong
)

// String returns the display label of the level.
func (l Level) String() string {
	switch l {
	case LevelWeak:
		return "Weak"
	case LevelMedium:
		return "Medium"
	case LevelStrong:
		return "Strong"
	default:
		return "None"
	}
}

// MaxScore is the highest value the rule table can award.
const MaxScore = 6

// Score is a coarse 0..6 rule score with its label.
type Score struct {
	Value int
	Level Level
}

// ScoreCredential applies the rule table for the policy's mode.
// Random mode inspects the generated value itself; readable mode mostly
// trusts the policy that produced it.
func ScoreCredential(p model.Policy, value string) Score {
	if value == "" {
		return Score{Level: LevelNone}
	}

	length := utf8.RuneCountInString(value)
	score := 0

	if p.Mode == model.ModeReadable {
		if length >= 12 {
			score += 2
		}
		if length >= 20 {
			score++
		}
		if p.WordCount >= 4 {
			score++
		}
		if p.AppendNumber {
			score++
		}
		if p.CapitalizeWords {
			score++
		}
	} else {
		if length >= 8 {
			score++
		}
		if length >= 12 {
			score++
		}
		lower, upper, digit, other := classify(value)
		for _, has := range []bool{lower, upper, digit, other} {
			if has {
				score++
			}
		}
	}

	return Score{Value: score, Level: bucket(score)}
}

func bucket(score int) Level {
	switch {
	case score <= 2:
		return LevelWeak
	case score <= 4:
		return LevelMedium
	default:
		return LevelStrong
	}
}

// classify reports which character classes occur in value.
// Anything outside ASCII letters and digits counts as a symbol.
func classify(value string) (lower, upper, digit, other bool) {
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	return lower, upper, digit, other
}
