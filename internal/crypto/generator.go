package crypto

import (
	"github.com/vaultpass/passforge/internal/model"
)

// Generator produces credentials from a policy using an injected random source.
type Generator struct {
	src   RandomSource
	lists *WordLists
}

// NewGenerator creates a Generator. lists may be nil when only random mode is used.
func NewGenerator(src RandomSource, lists *WordLists) *Generator {
	return &Generator{src: src, lists: lists}
}

// WordLists returns the registry used for readable mode.
func (g *Generator) WordLists() *WordLists {
	return g.lists
}

// Generate validates the policy and produces a credential with its policy snapshot.
func (g *Generator) Generate(p model.Policy) (model.Credential, error) {
	if err := ValidatePolicy(p, g.lists); err != nil {
		return model.Credential{}, err
	}

	switch p.Mode {
	case model.ModeReadable:
		words, _ := g.lists.Get(p.WordListID)
		value, err := Passphrase(g.src, words, p)
		if err != nil {
			return model.Credential{}, err
		}
		return model.Credential{
			Value:      value,
			Mode:       model.ModeReadable,
			WordCount:  p.WordCount,
			WordListID: p.WordListID,
		}, nil
	default:
		value, err := RandomPassword(g.src, p)
		if err != nil {
			return model.Credential{}, err
		}
		return model.Credential{
			Value:  value,
			Mode:   model.ModeRandom,
			Length: p.Length,
		}, nil
	}
}

// RandomPassword creates a random-character password of exactly p.Length characters.
//
// One random byte is drawn per position. When coverage is required the leading
// positions take one character from each selected class, the rest come from the
// full charset, and the same bytes drive a Fisher-Yates shuffle. Bytes are
// reduced modulo the pool size; for pools of at most 94 characters the bias is
// negligible and accepted. Output depends only on the bytes read from src.
func RandomPassword(src RandomSource, p model.Policy) (string, error) {
	cs, err := BuildCharset(ClassFlags{
		Lowercase:      p.Lowercase,
		Uppercase:      p.Uppercase,
		Digits:         p.Digits,
		Symbols:        p.Symbols,
		ExcludeSimilar: p.ExcludeSimilar,
	})
	if err != nil {
		return "", err
	}
	if p.Length < MinLength || p.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	var pools []string
	if p.RequireCoverage {
		pools = cs.Pools
	}

	random := make([]byte, p.Length)
	if err := src.Fill(random); err != nil {
		return "", err
	}

	result := make([]byte, p.Length)

	// Guarantee at least one character from each selected class.
	covered := min(len(pools), p.Length)
	for i := 0; i < covered; i++ {
		pool := pools[i]
		result[i] = pool[int(random[i])%len(pool)]
	}

	// Fill the remaining positions from the full charset.
	for i := covered; i < p.Length; i++ {
		result[i] = cs.All[int(random[i])%len(cs.All)]
	}

	shuffle(result, random)

	return string(result), nil
}

// shuffle performs a Fisher-Yates shuffle reusing random[i] as the exchange index.
func shuffle(data, random []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := int(random[i]) % (i + 1)
		data[i], data[j] = data[j], data[i]
	}
}
