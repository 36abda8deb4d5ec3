package service

import (
	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
)

// ResolvePolicy builds the policy a request asks for: defaults, then the
// request's explicit fields, then the named preset on top.
func ResolvePolicy(req model.GenerateRequest, lists *crypto.WordLists) (model.Policy, error) {
	p := model.DefaultPolicy()

	if req.Mode != "" {
		p.Mode = req.Mode
	}
	if req.Length != 0 {
		p.Length = req.Length
	}
	p.Uppercase = boolOrDefault(req.Uppercase, p.Uppercase)
	p.Lowercase = boolOrDefault(req.Lowercase, p.Lowercase)
	p.Digits = boolOrDefault(req.Numbers, p.Digits)
	p.Symbols = boolOrDefault(req.Symbols, p.Symbols)
	p.ExcludeSimilar = boolOrDefault(req.ExcludeSimilar, p.ExcludeSimilar)
	p.RequireCoverage = boolOrDefault(req.RequireCoverage, p.RequireCoverage)

	if req.WordList != "" {
		p.WordListID = req.WordList
	}
	if req.WordCount != 0 {
		p.WordCount = req.WordCount
	}
	if req.Separator != nil {
		p.Separator = *req.Separator
	}
	p.CapitalizeWords = boolOrDefault(req.Capitalize, p.CapitalizeWords)
	p.AppendNumber = boolOrDefault(req.AppendNumber, p.AppendNumber)

	if req.Preset != "" {
		var err error
		if p, err = crypto.ApplyPreset(p, req.Preset); err != nil {
			return model.Policy{}, err
		}
	}

	if err := crypto.ValidatePolicy(p, lists); err != nil {
		return model.Policy{}, err
	}
	return p, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
