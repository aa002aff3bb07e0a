package domain

import "time"

// Verdict is the outcome of a gating evaluation
type Verdict string

const (
	VerdictAdmit  Verdict = "admit"
	VerdictReject Verdict = "reject"
	// VerdictInconclusive means the strategy could not decide. It never
	// leaves the gating engine, the engine resolves it via fallback or
	// the default-on-error policy.
	VerdictInconclusive Verdict = "inconclusive"
)

// GatingVerdict is a verdict with its origin attached
type GatingVerdict struct {
	Verdict   Verdict
	Reason    string // strategy name plus detail, e.g. "keywords: matched [economy]"
	DecidedAt time.Time
}

// Concrete reports whether the verdict is a final admit/reject
func (v GatingVerdict) Concrete() bool {
	return v.Verdict == VerdictAdmit || v.Verdict == VerdictReject
}

// Admitted reports whether the item passed the gate
func (v GatingVerdict) Admitted() bool { return v.Verdict == VerdictAdmit }

// MatchMode controls how keyword matches translate into a verdict
type MatchMode string

const (
	// MatchAllowIfAny admits when at least one keyword matches.
	// With an empty keyword set this rejects everything.
	MatchAllowIfAny MatchMode = "allow_if_any"
	// MatchDenyIfAny rejects when at least one keyword matches.
	// With an empty keyword set this admits everything.
	MatchDenyIfAny MatchMode = "deny_if_any"
)

// GatingStrategy selects the primary gating strategy
type GatingStrategy string

const (
	StrategyModel    GatingStrategy = "model"
	StrategyKeywords GatingStrategy = "keywords"
)

// GatingConfig is the process-wide gating configuration, read once at
// startup and shared read-only by all concurrent evaluations
type GatingConfig struct {
	Enabled            bool
	Strategy           GatingStrategy
	FallbackToKeywords bool
	Keywords           []string
	MatchMode          MatchMode
	DefaultOnError     bool
	CacheTTL           time.Duration
}
