package strength

import (
	"github.com/nbutton23/zxcvbn-go"
)

// Pattern is zxcvbn's dictionary- and pattern-aware opinion of a credential.
type Pattern struct {
	// Score ranges from 0 (guessable) to 4 (very unguessable).
	Score     int
	Entropy   float64
	CrackTime string
}

// PatternScore runs zxcvbn over value. Inputs such as a username can be passed
// so they are penalised when they appear inside the credential.
func PatternScore(value string, userInputs ...string) Pattern {
	if value == "" {
		return Pattern{CrackTime: "instant"}
	}
	result := zxcvbn.PasswordStrength(value, userInputs)
	return Pattern{
		Score:     result.Score,
		Entropy:   result.Entropy,
		CrackTime: result.CrackTimeDisplay,
	}
}
