package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are easily confused when read or typed.
	similarChars = "il1Lo0O"
)

// ErrPolicy is wrapped by every policy validation error.
var ErrPolicy = errors.New("invalid generation policy")

var (
	ErrNoCharacterTypes = fmt.Errorf("%w: at least one character type must be selected", ErrPolicy)
	ErrEmptyCharset     = fmt.Errorf("%w: character set is empty after filtering", ErrPolicy)
)

// ClassFlags selects the character classes of a random-mode policy.
type ClassFlags struct {
	Lowercase      bool
	Uppercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
}

// Charset is the resolved alphabet of a random-mode policy.
type Charset struct {
	// All is the concatenation of the selected classes.
	All string
	// Pools holds one entry per selected class in canonical order:
	// lowercase, uppercase, digits, symbols.
	Pools []string
}

// BuildCharset resolves class flags into the full alphabet and per-class pools.
// Similar-looking characters are removed from both when requested.
func BuildCharset(flags ClassFlags) (Charset, error) {
	if !flags.Lowercase && !flags.Uppercase && !flags.Digits && !flags.Symbols {
		return Charset{}, ErrNoCharacterTypes
	}

	var cs Charset
	var all strings.Builder

	add := func(selected bool, chars string) {
		if !selected {
			return
		}
		if flags.ExcludeSimilar {
			chars = stripSimilar(chars)
		}
		if chars == "" {
			return
		}
		all.WriteString(chars)
		cs.Pools = append(cs.Pools, chars)
	}

	add(flags.Lowercase, lowercaseChars)
	add(flags.Uppercase, uppercaseChars)
	add(flags.Digits, numberChars)
	add(flags.Symbols, symbolChars)

	cs.All = all.String()
	if cs.All == "" {
		return Charset{}, ErrEmptyCharset
	}
	return cs, nil
}

func stripSimilar(chars string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(similarChars, r) {
			return -1
		}
		return r
	}, chars)
}
