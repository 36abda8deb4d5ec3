package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vaultpass/passforge/internal/breach"
	"github.com/vaultpass/passforge/internal/crypto"
	"github.com/vaultpass/passforge/internal/model"
	"github.com/vaultpass/passforge/internal/strength"
)

const (
	MinBulkCount = 1
	MaxBulkCount = 500
)

var ErrPasswordRequired = fmt.Errorf("%w: password is required", crypto.ErrPolicy)

// GeneratorService handles credential generation and evaluation.
type GeneratorService struct {
	generator *crypto.Generator
	estimator *strength.Estimator
	checker   breach.Checker
}

// NewGeneratorService creates a new GeneratorService. checker may be nil,
// in which case breach checks are never run.
func NewGeneratorService(gen *crypto.Generator, est *strength.Estimator, checker breach.Checker) *GeneratorService {
	return &GeneratorService{
		generator: gen,
		estimator: est,
		checker:   checker,
	}
}

// Generate produces a credential for the request and evaluates it. When the
// request asks for it, the fresh credential is checked against the breach
// corpus; a failed check is reported in the response and is not an error.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	policy, err := ResolvePolicy(req, s.generator.WordLists())
	if err != nil {
		return model.GenerateResponse{}, err
	}

	cred, err := s.generator.Generate(policy)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := s.Describe(policy, cred)

	if req.BreachCheck && s.checker != nil {
		res := s.checker.Check(ctx, cred.Value)
		resp.Breach = &model.BreachResponse{State: res.State.String(), Count: res.Count}
	}

	return resp, nil
}

// Bulk produces count independent credentials with one policy. count is
// clamped to [MinBulkCount, MaxBulkCount].
func (s *GeneratorService) Bulk(req model.BulkRequest) (model.BulkResponse, error) {
	policy, err := ResolvePolicy(req.GenerateRequest, s.generator.WordLists())
	if err != nil {
		return model.BulkResponse{}, err
	}

	count := ClampBulkCount(req.Count)
	passwords := make([]string, 0, count)
	for range count {
		cred, err := s.generator.Generate(policy)
		if err != nil {
			return model.BulkResponse{}, err
		}
		passwords = append(passwords, cred.Value)
	}

	return model.BulkResponse{
		BatchID:   uuid.NewString(),
		Mode:      policy.Mode,
		Passwords: passwords,
	}, nil
}

// Evaluate scores a caller-supplied credential as if the request's policy had
// produced it. No breach lookup is made for supplied credentials.
func (s *GeneratorService) Evaluate(req model.EvaluateRequest) (model.EvaluateResponse, error) {
	if req.Password == "" {
		return model.EvaluateResponse{}, ErrPasswordRequired
	}

	policy, err := ResolvePolicy(req.GenerateRequest, s.generator.WordLists())
	if err != nil {
		return model.EvaluateResponse{}, err
	}

	cred := model.Credential{Value: req.Password, Mode: policy.Mode}
	if policy.Mode == model.ModeReadable {
		cred.WordCount = policy.WordCount
		cred.WordListID = policy.WordListID
	} else {
		cred.Length = utf8.RuneCountInString(req.Password)
	}

	return s.evaluate(policy, cred), nil
}

// Describe evaluates an already generated credential without a breach lookup.
func (s *GeneratorService) Describe(policy model.Policy, cred model.Credential) model.GenerateResponse {
	eval := s.evaluate(policy, cred)
	return model.GenerateResponse{
		Password:  cred.Value,
		Mode:      cred.Mode,
		Length:    utf8.RuneCountInString(cred.Value),
		WordCount: cred.WordCount,
		Entropy:   eval.Entropy,
		Strength:  eval.Strength,
		Pattern:   eval.Pattern,

		ComplianceIssues: eval.ComplianceIssues,
	}
}

// WordLists describes the available word lists.
func (s *GeneratorService) WordLists() []model.WordListResponse {
	lists := s.generator.WordLists()
	ids := lists.IDs()
	out := make([]model.WordListResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.WordListResponse{ID: id, Size: lists.Size(id)})
	}
	return out
}

// Presets describes the built-in presets.
func (s *GeneratorService) Presets() []model.PresetResponse {
	out := make([]model.PresetResponse, 0, len(crypto.Presets))
	for _, p := range crypto.Presets {
		out = append(out, model.PresetResponse{Key: p.Key, Description: p.Description})
	}
	return out
}

func (s *GeneratorService) evaluate(policy model.Policy, cred model.Credential) model.EvaluateResponse {
	est := s.estimator.Estimate(policy, cred)
	score := strength.ScoreCredential(policy, cred.Value)
	pattern := strength.PatternScore(cred.Value)

	return model.EvaluateResponse{
		Entropy: model.EntropyResponse{
			Bits:      est.RoundedBits(),
			ExactBits: est.Bits,
			Online:    est.Online(),
			Offline:   est.Offline(),
		},
		Strength: model.StrengthResponse{Score: score.Value, Label: score.Level.String()},
		Pattern:  model.PatternResponse{Score: pattern.Score, CrackTime: pattern.CrackTime},

		ComplianceIssues: crypto.ComplianceIssues(policy),
	}
}

// ClampBulkCount limits n to [MinBulkCount, MaxBulkCount].
func ClampBulkCount(n int) int {
	return min(max(n, MinBulkCount), MaxBulkCount)
}
