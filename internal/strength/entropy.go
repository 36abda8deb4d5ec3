// Package strength estimates how hard a generated credential is to guess.
//
// Three independent opinions are exposed and may disagree: an entropy estimate
// derived from the policy, a coarse rule-based score used for labels, and a
// pattern-aware score from zxcvbn.
package strength

import (
	"math"

	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
)

// expectedFraction models the average case: the target is found halfway through the guess space.
const expectedFraction = 0.5

// Rates are attacker guess rates in guesses per second.
type Rates struct {
	Online  float64
	Offline float64
}

// DefaultRates returns a throttled online attacker and a GPU-class offline attacker.
func DefaultRates() Rates {
	return Rates{
		Online:  100,
		Offline: 1e10,
	}
}

// Estimate is the entropy and expected crack time of one credential.
// Seconds may be +Inf for very large guess spaces.
type Estimate struct {
	Bits           float64
	OnlineSeconds  float64
	OfflineSeconds float64
}

// RoundedBits returns Bits rounded to the nearest integer for display.
func (e Estimate) RoundedBits() int {
	return int(math.Round(e.Bits))
}

// Online formats OnlineSeconds.
func (e Estimate) Online() string {
	return FormatSeconds(e.OnlineSeconds)
}

// Offline formats OfflineSeconds.
func (e Estimate) Offline() string {
	return FormatSeconds(e.OfflineSeconds)
}

// Estimator computes entropy estimates for a policy and credential.
type Estimator struct {
	rates Rates
	lists *crypto.WordLists
}

// NewEstimator creates an Estimator. lists provides word-list sizes for readable mode.
func NewEstimator(rates Rates, lists *crypto.WordLists) *Estimator {
	return &Estimator{rates: rates, lists: lists}
}

// Estimate returns the entropy of the guess space the policy draws cred from.
//
// Random mode: length * log2(|charset|), where the charset is the union of the
// selected, similar-filtered classes.
// Readable mode: wordCount * log2(|list|), plus one bit per word when words are
// capitalized and log2(999) when a number is appended. Both additions are
// approximations kept for parity with the displayed estimates users know.
func (e *Estimator) Estimate(p model.Policy, cred model.Credential) Estimate {
	var bits float64

	switch p.Mode {
	case model.ModeReadable:
		wordCount := cred.WordCount
		if wordCount == 0 {
			wordCount = p.WordCount
		}
		listID := cred.WordListID
		if listID == "" {
			listID = p.WordListID
		}
		size := 0
		if e.lists != nil {
			size = e.lists.Size(listID)
		}
		bits = float64(wordCount) * math.Log2(float64(max(1, size)))
		if p.CapitalizeWords {
			bits += float64(wordCount)
		}
		if p.AppendNumber {
			bits += math.Log2(crypto.MaxAppendedNumber)
		}
	default:
		length := cred.Length
		if length == 0 {
			length = p.Length
		}
		bits = float64(length) * math.Log2(float64(max(1, charsetSize(p))))
	}

	guesses := math.Pow(2, bits)
	return Estimate{
		Bits:           bits,
		OnlineSeconds:  guesses * expectedFraction / e.rates.Online,
		OfflineSeconds: guesses * expectedFraction / e.rates.Offline,
	}
}

func charsetSize(p model.Policy) int {
	cs, err := crypto.BuildCharset(crypto.ClassFlags{
		Lowercase:      p.Lowercase,
		Uppercase:      p.Uppercase,
		Digits:         p.Digits,
		Symbols:        p.Symbols,
		ExcludeSimilar: p.ExcludeSimilar,
	})
	if err != nil {
		return 0
	}
	return len(cs.All)
}
