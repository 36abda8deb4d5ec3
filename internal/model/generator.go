package model

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and an explicit value.
type GenerateRequest struct {
	Preset string `json:"preset"`
	Mode   Mode   `json:"mode"`

	Length          int   `json:"length"`
	Uppercase       *bool `json:"uppercase"`
	Lowercase       *bool `json:"lowercase"`
	Numbers         *bool `json:"numbers"`
	Symbols         *bool `json:"symbols"`
	ExcludeSimilar  *bool `json:"exclude_similar"`
	RequireCoverage *bool `json:"require_coverage"`

	WordList     string     `json:"word_list"`
	WordCount    int        `json:"word_count"`
	Separator    *Separator `json:"separator"`
	Capitalize   *bool      `json:"capitalize"`
	AppendNumber *bool      `json:"append_number"`

	BreachCheck bool `json:"breach_check"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password  string           `json:"password"`
	Mode      Mode             `json:"mode"`
	Length    int              `json:"length"`
	WordCount int              `json:"word_count,omitempty"`
	Entropy   EntropyResponse  `json:"entropy"`
	Strength  StrengthResponse `json:"strength"`
	Pattern   PatternResponse  `json:"pattern"`
	Breach    *BreachResponse  `json:"breach,omitempty"`

	ComplianceIssues []string `json:"compliance_issues"`
}

// EntropyResponse carries the entropy estimate in display form.
// Raw second counts are omitted because they overflow JSON numbers for long passwords.
type EntropyResponse struct {
	Bits      int     `json:"bits"`
	ExactBits float64 `json:"exact_bits"`
	Online    string  `json:"online_crack_time"`
	Offline   string  `json:"offline_crack_time"`
}

// StrengthResponse is the coarse rule-based score.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// PatternResponse is the dictionary/pattern-aware opinion.
type PatternResponse struct {
	Score     int    `json:"score"`
	CrackTime string `json:"crack_time"`
}

// BreachResponse reports the outcome of a breach-corpus lookup.
type BreachResponse struct {
	State string `json:"state"`
	Count int    `json:"count,omitempty"`
}

// BulkRequest asks for Count independent credentials with the same policy.
type BulkRequest struct {
	GenerateRequest
	Count int `json:"count"`
}

// BulkResponse holds a batch of generated credentials.
type BulkResponse struct {
	BatchID   string   `json:"batch_id"`
	Mode      Mode     `json:"mode"`
	Passwords []string `json:"passwords"`
}

// EvaluateRequest scores an existing credential against the policy that produced it.
type EvaluateRequest struct {
	GenerateRequest
	Password string `json:"password"`
}

// EvaluateResponse is the evaluation of a caller-supplied credential.
type EvaluateResponse struct {
	Entropy  EntropyResponse  `json:"entropy"`
	Strength StrengthResponse `json:"strength"`
	Pattern  PatternResponse  `json:"pattern"`

	ComplianceIssues []string `json:"compliance_issues"`
}

// WordListResponse describes one available word list.
type WordListResponse struct {
	ID   string `json:"id"`
	Size int    `json:"size"`
}

// PresetResponse describes one named preset.
type PresetResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}
