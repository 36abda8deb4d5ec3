package crypto

import (
	"strconv"
	"strings"

	"github.com/vaultpass/passforge/internal/model"
)

// MaxAppendedNumber is the upper bound of the number appended to passphrases.
const MaxAppendedNumber = 999

// Passphrase joins p.WordCount words drawn uniformly (with replacement) from words.
// When p.AppendNumber is set a number in [1, 999] is added after the last word
// using the same separator.
func Passphrase(src RandomSource, words []string, p model.Policy) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	if p.WordCount < MinWords || p.WordCount > MaxWords {
		return "", ErrWordCountOutOfRange
	}

	parts := make([]string, 0, p.WordCount+1)
	for i := 0; i < p.WordCount; i++ {
		idx, err := src.IntN(len(words))
		if err != nil {
			return "", err
		}
		word := words[idx]
		if p.CapitalizeWords {
			word = capitalize(word)
		}
		parts = append(parts, word)
	}

	if p.AppendNumber {
		n, err := src.IntN(MaxAppendedNumber)
		if err != nil {
			return "", err
		}
		parts = append(parts, strconv.Itoa(n+1))
	}

	return strings.Join(parts, p.Separator.String()), nil
}

// capitalize upper-cases the first letter. Words are ASCII lowercase.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
