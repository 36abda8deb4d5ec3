package model

// Mode selects how a credential is generated.
type Mode string

const (
	ModeRandom   Mode = "random"
	ModeReadable Mode = "readable"
)

// Separator joins passphrase words. SeparatorNone joins them with nothing.
type Separator string

const (
	SeparatorHyphen     Separator = "-"
	SeparatorUnderscore Separator = "_"
	SeparatorPeriod     Separator = "."
	SeparatorSpace      Separator = " "
	SeparatorNone       Separator = "none"
)

// Separators lists every accepted separator in display order.
var Separators = []Separator{
	SeparatorHyphen,
	SeparatorUnderscore,
	SeparatorPeriod,
	SeparatorSpace,
	SeparatorNone,
}

// String returns the literal text placed between words.
func (s Separator) String() string {
	if s == SeparatorNone {
		return ""
	}
	return string(s)
}

// Policy describes how to generate a credential.
// Random-mode fields are ignored in readable mode and vice versa.
type Policy struct {
	Mode Mode `json:"mode"`

	Length          int  `json:"length,omitempty"`
	Lowercase       bool `json:"lowercase"`
	Uppercase       bool `json:"uppercase"`
	Digits          bool `json:"digits"`
	Symbols         bool `json:"symbols"`
	ExcludeSimilar  bool `json:"exclude_similar"`
	RequireCoverage bool `json:"require_coverage"`

	WordListID      string    `json:"word_list,omitempty"`
	WordCount       int       `json:"word_count,omitempty"`
	Separator       Separator `json:"separator,omitempty"`
	CapitalizeWords bool      `json:"capitalize_words"`
	AppendNumber    bool      `json:"append_number"`
}

// DefaultPolicy returns a 16 character random policy with every class enabled.
// The readable fields are pre-filled so switching modes keeps sensible values.
func DefaultPolicy() Policy {
	return Policy{
		Mode:            ModeRandom,
		Length:          16,
		Lowercase:       true,
		Uppercase:       true,
		Digits:          true,
		Symbols:         true,
		RequireCoverage: true,
		WordListID:      "common",
		WordCount:       4,
		Separator:       SeparatorHyphen,
		CapitalizeWords: true,
		AppendNumber:    true,
	}
}

// Credential is a generated value together with the policy parameters
// needed to recompute its strength later.
type Credential struct {
	Value      string `json:"value"`
	Mode       Mode   `json:"mode"`
	Length     int    `json:"length,omitempty"`
	WordCount  int    `json:"word_count,omitempty"`
	WordListID string `json:"word_list,omitempty"`
}
