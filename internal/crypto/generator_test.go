package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/passforge/internal/model"
)

func randomPolicy(length int, lower, upper, digits, symbols bool) model.Policy {
	return model.Policy{
		Mode:            model.ModeRandom,
		Length:          length,
		Lowercase:       lower,
		Uppercase:       upper,
		Digits:          digits,
		Symbols:         symbols,
		RequireCoverage: true,
	}
}

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestRandomPassword(t *testing.T) {
	tests := []struct {
		name    string
		policy  model.Policy
		wantErr error
	}{
		{
			name:   "default policy",
			policy: model.DefaultPolicy(),
		},
		{
			name:   "all classes long",
			policy: randomPolicy(64, true, true, true, true),
		},
		{
			name:   "uppercase only",
			policy: randomPolicy(16, false, true, false, false),
		},
		{
			name:   "symbols only",
			policy: randomPolicy(16, false, false, false, true),
		},
		{
			name:   "minimum length",
			policy: randomPolicy(MinLength, true, true, true, true),
		},
		{
			name:   "maximum length",
			policy: randomPolicy(MaxLength, true, true, false, false),
		},
		{
			name:    "length too short",
			policy:  randomPolicy(3, true, true, true, true),
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "length too long",
			policy:  randomPolicy(200, true, false, false, false),
			wantErr: ErrLengthOutOfRange,
		},
		{
			name:    "no character types selected",
			policy:  randomPolicy(16, false, false, false, false),
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RandomPassword(SecureSource(), tt.policy)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RandomPassword() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrPolicy) {
					t.Errorf("RandomPassword() error = %v, want it to wrap ErrPolicy", err)
				}
				if result != "" {
					t.Error("RandomPassword() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("RandomPassword() unexpected error: %v", err)
			}
			if len(result) != tt.policy.Length {
				t.Errorf("RandomPassword() length = %d, want %d", len(result), tt.policy.Length)
			}
		})
	}
}

func TestRandomPasswordGolden(t *testing.T) {
	tests := []struct {
		name   string
		policy model.Policy
		bytes  []byte
		want   string
	}{
		{
			name:   "all classes with sequential bytes",
			policy: randomPolicy(16, true, true, true, true),
			bytes:  sequence(16),
			want:   "aB2$efghijklmnop",
		},
		{
			name: "exclude similar shifts digit and fill characters",
			policy: func() model.Policy {
				p := randomPolicy(16, true, true, true, true)
				p.ExcludeSimilar = true
				return p
			}(),
			bytes: sequence(16),
			want:  "aB4$efghjkmnpqrs",
		},
		{
			name:   "lowercase and digits with shuffle",
			policy: randomPolicy(8, true, false, true, false),
			bytes:  []byte{200, 17, 255, 99, 3, 0, 77, 128},
			want:   "d7ad1fus",
		},
		{
			name: "lowercase and digits without coverage",
			policy: func() model.Policy {
				p := randomPolicy(8, true, false, true, false)
				p.RequireCoverage = false
				return p
			}(),
			bytes: []byte{200, 17, 255, 99, 3, 0, 77, 128},
			want:  "drad1fuu",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RandomPassword(&scriptedSource{bytes: tt.bytes}, tt.policy)
			if err != nil {
				t.Fatalf("RandomPassword() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RandomPassword() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRandomPasswordDeterministic(t *testing.T) {
	policy := randomPolicy(32, true, true, true, true)
	bytes := make([]byte, 32)
	for i := range bytes {
		bytes[i] = byte(i*37 + 11)
	}

	first, err := RandomPassword(&scriptedSource{bytes: bytes}, policy)
	if err != nil {
		t.Fatalf("RandomPassword() unexpected error: %v", err)
	}
	second, err := RandomPassword(&scriptedSource{bytes: bytes}, policy)
	if err != nil {
		t.Fatalf("RandomPassword() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("same bytes produced %q and %q", first, second)
	}
}

func TestRandomPasswordCoverageProperty(t *testing.T) {
	classes := []string{lowercaseChars, uppercaseChars, numberChars, symbolChars}

	for mask := 1; mask < 16; mask++ {
		for _, exclude := range []bool{false, true} {
			policy := randomPolicy(0, mask&1 != 0, mask&2 != 0, mask&4 != 0, mask&8 != 0)
			policy.ExcludeSimilar = exclude

			for length := MinLength; length <= 24; length++ {
				policy.Length = length
				src := newSeededSource(uint64(mask*1000 + length))

				for round := 0; round < 50; round++ {
					password, err := RandomPassword(src, policy)
					if err != nil {
						t.Fatalf("RandomPassword() unexpected error: %v", err)
					}
					if len(password) != length {
						t.Fatalf("RandomPassword() length = %d, want %d", len(password), length)
					}
					for i, class := range classes {
						if mask&(1<<i) == 0 {
							if strings.ContainsAny(password, class) {
								t.Fatalf("password %q contains unselected class %q", password, class)
							}
							continue
						}
						if !strings.ContainsAny(password, class) {
							t.Fatalf("password %q missing class %q (mask %04b)", password, class, mask)
						}
					}
					if exclude && strings.ContainsAny(password, similarChars) {
						t.Fatalf("password %q contains similar-looking characters", password)
					}
				}
			}
		}
	}
}

func TestRandomPasswordSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		policy  model.Policy
		charset string
	}{
		{"uppercase only", randomPolicy(32, false, true, false, false), uppercaseChars},
		{"lowercase only", randomPolicy(32, true, false, false, false), lowercaseChars},
		{"numbers only", randomPolicy(32, false, false, true, false), numberChars},
		{"symbols only", randomPolicy(32, false, false, false, true), symbolChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := RandomPassword(SecureSource(), tt.policy)
			if err != nil {
				t.Fatalf("RandomPassword() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestRandomPasswordSourceFailure(t *testing.T) {
	_, err := RandomPassword(failingSource{}, model.DefaultPolicy())
	if !errors.Is(err, ErrRandomSource) {
		t.Errorf("RandomPassword() error = %v, want ErrRandomSource", err)
	}
}

func TestRandomPasswordProducesUniquePasswords(t *testing.T) {
	policy := model.DefaultPolicy()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := RandomPassword(SecureSource(), policy)
		if err != nil {
			t.Fatalf("RandomPassword() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGeneratorGenerate(t *testing.T) {
	lists := NewWordLists()
	if err := lists.Add("test", []string{"apple", "beach", "chair", "dance"}); err != nil {
		t.Fatalf("Add() unexpected error: %v", err)
	}

	t.Run("random snapshot", func(t *testing.T) {
		gen := NewGenerator(&scriptedSource{bytes: sequence(16)}, lists)
		cred, err := gen.Generate(randomPolicy(16, true, true, true, true))
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if cred.Value != "aB2$efghijklmnop" {
			t.Errorf("Generate() value = %q", cred.Value)
		}
		if cred.Mode != model.ModeRandom || cred.Length != 16 || cred.WordCount != 0 {
			t.Errorf("Generate() snapshot = %+v", cred)
		}
	})

	t.Run("readable snapshot", func(t *testing.T) {
		gen := NewGenerator(&scriptedSource{ints: []int{3, 2, 1}}, lists)
		cred, err := gen.Generate(model.Policy{
			Mode:       model.ModeReadable,
			WordListID: "test",
			WordCount:  3,
			Separator:  model.SeparatorPeriod,
		})
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if cred.Value != "dance.chair.beach" {
			t.Errorf("Generate() value = %q, want %q", cred.Value, "dance.chair.beach")
		}
		if cred.Mode != model.ModeReadable || cred.WordCount != 3 || cred.WordListID != "test" || cred.Length != 0 {
			t.Errorf("Generate() snapshot = %+v", cred)
		}
	})

	t.Run("invalid policy", func(t *testing.T) {
		gen := NewGenerator(SecureSource(), lists)
		_, err := gen.Generate(model.Policy{Mode: "emoji"})
		if !errors.Is(err, ErrUnknownMode) {
			t.Errorf("Generate() error = %v, want ErrUnknownMode", err)
		}
	})
}
